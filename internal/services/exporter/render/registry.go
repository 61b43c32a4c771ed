package render

import "loanexport/internal/ports"

// Key selects a renderer for one (export type, format) pair.
type Key struct {
	Type   ports.ExportType
	Format ports.Format
}

// DefaultRegistry wires every supported combination. Each format
// renderer handles both export variants off the same document, so the
// same instance backs both keys; an absent key means the combination
// is not offered.
func DefaultRegistry() map[Key]ports.Renderer {
	byFormat := map[ports.Format]ports.Renderer{
		ports.FormatCSV:  NewCSV(),
		ports.FormatXLSX: NewXLSX(),
		ports.FormatPDF:  NewPDF(),
	}

	reg := make(map[Key]ports.Renderer, len(byFormat)*2)
	for _, t := range []ports.ExportType{ports.ExportSchedule, ports.ExportStatement} {
		for f, r := range byFormat {
			reg[Key{Type: t, Format: f}] = r
		}
	}
	return reg
}
