package ports

import (
	"context"

	"github.com/99minutos/label-system/internal/core/domain"
)

// LabelResult is returned by LabelService.Generate.
type LabelResult struct {
	Document *domain.LabelDocument
	// Generated is true when the tracking identifier was synthesised rather
	// than supplied by the caller.
	Generated bool
	// Degradations lists inputs that were coerced to defaults during encoding.
	Degradations []string
}

// LabelService runs the encoding and assembly pipeline for one label.
type LabelService interface {
	Generate(ctx context.Context, sess *domain.Session, in domain.ShipmentInput) (*LabelResult, error)
	TrackingNumber(ctx context.Context, courier string) (string, error)
}

// TemplateService persists and restores named field sets.
type TemplateService interface {
	Save(ctx context.Context, name string, fields domain.ShipmentInput) (*domain.NamedTemplate, error)
	Load(ctx context.Context, name string) (*domain.NamedTemplate, error)
	Delete(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Apply(ctx context.Context, sess *domain.Session, name string) (domain.ShipmentInput, error)
}

// ExportFormat selects the packaging of an exported label.
type ExportFormat string

const (
	FormatPNG ExportFormat = "png"
	FormatPDF ExportFormat = "pdf"
)

// RenderFailure records one barcode that could not be drawn.
type RenderFailure struct {
	Symbology domain.Symbology
	Target    string
	Err       error
}

// ExportArtifact is the packaged output of an export.
type ExportArtifact struct {
	Bytes          []byte
	ContentType    string
	Filename       string
	RenderFailures []RenderFailure
}

// ExportService renders, captures and packages a built label.
type ExportService interface {
	Export(ctx context.Context, doc *domain.LabelDocument, format ExportFormat) (*ExportArtifact, error)
}
