package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/talentbridge/ats-api/internal/domain"
)

// LocalStore guarda archivos subidos en un directorio local. Los nombres se
// generan con UUID: el nombre original del cliente jamás toca el filesystem.
type LocalStore struct {
	baseDir string
}

// NewLocalStore crea el directorio base si no existe y devuelve el store.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: abs}, nil
}

// Save persiste el contenido bajo un nombre UUID (conservando solo la
// extensión del nombre original) y devuelve el nombre generado, que es la
// file_location que se guarda en BD.
func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	name := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Resolve convierte una file_location en una ruta absoluta dentro del
// directorio base. Cualquier intento de escaparse del directorio (.. o
// separadores embebidos) devuelve domain.ErrForbidden.
func (s *LocalStore) Resolve(location string) (string, error) {
	if location == "" || filepath.Base(location) != location {
		return "", domain.ErrForbidden
	}
	path, err := filepath.Abs(filepath.Join(s.baseDir, location))
	if err != nil {
		return "", fmt.Errorf("resolve file path: %w", err)
	}
	if !strings.HasPrefix(path, s.baseDir+string(os.PathSeparator)) {
		return "", domain.ErrForbidden
	}
	return path, nil
}

// Remove borra el archivo asociado a una file_location. Ignora archivos ya
// inexistentes.
func (s *LocalStore) Remove(location string) error {
	path, err := s.Resolve(location)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
