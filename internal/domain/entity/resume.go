package entity

import "time"

// Estados de parseo de un Resume.
const (
	ResumeParseValid   = "valid"
	ResumeParseInvalid = "invalid"
	ResumeParsePending = "pending"
)

// Resume hoja de vida de un Candidate: payload parseado (jsonb) + archivo en disco.
// NO tiene company_id: es accesible para un tenant sii su Candidate lo es.
type Resume struct {
	ID           string
	CandidateID  string
	FileLocation string
	ParseStatus  string
	ParsedData   ResumeData
	DateCreated  time.Time
}

// ResumeData esquema unificado de hoja de vida (se serializa tal cual a jsonb).
type ResumeData struct {
	Meta           *ResumeMeta     `json:"meta,omitempty"`
	Basics         ResumeBasics    `json:"basics"`
	Work           []WorkEntry     `json:"work"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Publications   []Publication   `json:"publications,omitempty"`
	Certificates   []Certificate   `json:"certificates,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	References     []Reference     `json:"references,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty"`
	RawText        string          `json:"rawText,omitempty"` // texto extraído del PDF subido
}

// ResumeMeta metadatos del documento.
type ResumeMeta struct {
	SchemaVersion string     `json:"schemaVersion,omitempty"`
	Source        string     `json:"source,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	LastModified  *time.Time `json:"lastModified,omitempty"`
}

// ResumeBasics datos básicos del candidato dentro de la hoja de vida.
type ResumeBasics struct {
	Name     string          `json:"name"`
	Label    string          `json:"label,omitempty"`
	Image    string          `json:"image,omitempty"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	Summary  string          `json:"summary,omitempty"`
	Location *ResumeLocation `json:"location,omitempty"`
	Profiles []SocialProfile `json:"profiles,omitempty"`
}

// ResumeLocation dirección dentro de la hoja de vida.
type ResumeLocation struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

// SocialProfile perfil en una red (LinkedIn, GitHub, etc.).
type SocialProfile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url"`
}

// WorkEntry experiencia laboral.
type WorkEntry struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Location   string   `json:"location,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	IsCurrent  bool     `json:"isCurrent,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education formación académica.
type Education struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// Skill habilidad categorizada.
type Skill struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Project proyecto destacado.
type Project struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Role             string   `json:"role,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	URL              string   `json:"url,omitempty"`
	RepositoryURL    string   `json:"repositoryUrl,omitempty"`
	TechnologiesUsed []string `json:"technologiesUsed,omitempty"`
}

// Publication publicación académica o técnica.
type Publication struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Certificate certificación obtenida.
type Certificate struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language idioma y nivel de fluidez.
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// Reference referencia personal o profesional.
type Reference struct {
	Name      string `json:"name,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// CustomSection sección libre de la hoja de vida.
type CustomSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
