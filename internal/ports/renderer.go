package ports

import "loanexport/internal/models"

type ExportType string

const (
	ExportSchedule  ExportType = "schedule"
	ExportStatement ExportType = "statement"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

type ctxKey string

const CtxExportRecordID ctxKey = "export_record_id"

// Renderer turns an export document into a finished byte buffer.
// Implementations are pure: no network, no disk, deterministic for
// identical input (the PDF page footer timestamp excepted).
type Renderer interface {
	Render(doc models.ExportDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
