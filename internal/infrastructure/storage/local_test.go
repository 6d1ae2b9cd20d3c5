package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/infrastructure/storage"
)

func newStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// Save genera un nombre UUID conservando solo la extensión: el nombre original
// del cliente nunca toca el filesystem.
func TestSave_NombreGenerado(t *testing.T) {
	store := newStore(t)

	name, err := store.Save("../../etc/CV Final (2).PDF", strings.NewReader("contenido"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".pdf"), "la extensión se conserva en minúsculas")
	assert.NotContains(t, name, "CV Final")
	assert.NotContains(t, name, string(os.PathSeparator))

	path, err := store.Resolve(name)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

// Dos archivos con el mismo nombre original no colisionan.
func TestSave_SinColisiones(t *testing.T) {
	store := newStore(t)

	a, err := store.Save("cv.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save("cv.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// Una file_location con .. o separadores embebidos intenta escaparse del
// directorio base y se rechaza con ErrForbidden.
func TestResolve_Traversal(t *testing.T) {
	store := newStore(t)

	for _, location := range []string{
		"",
		"..",
		"../secreto.txt",
		"sub/archivo.pdf",
		"/etc/passwd",
	} {
		_, err := store.Resolve(location)
		assert.ErrorIs(t, err, domain.ErrForbidden, "location %q debe rechazarse", location)
	}
}

// Una location sana resuelve dentro del directorio base.
func TestResolve_DentroDelBase(t *testing.T) {
	store := newStore(t)

	name, err := store.Save("cv.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)

	path, err := store.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, name, filepath.Base(path))
}

// Remove borra el archivo; borrar uno ya inexistente no es error.
func TestRemove(t *testing.T) {
	store := newStore(t)

	name, err := store.Save("cv.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	path, err := store.Resolve(name)
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(name), "remove idempotente")
}

// Remove también valida la location: no se puede borrar fuera del base.
func TestRemove_Traversal(t *testing.T) {
	store := newStore(t)

	err := store.Remove("../fuera.txt")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
