package services

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"reeyo/internal/domain/entities"
	"reeyo/pkg/utils"
)

// ExportService writes the current filtered view of one collection as CSV.
type ExportService[T entities.Entity] struct {
	query   *QueryService[T]
	columns []utils.Column[T]
}

// NewExportService creates an exporter using the given column set.
func NewExportService[T entities.Entity](query *QueryService[T], columns []utils.Column[T]) *ExportService[T] {
	return &ExportService[T]{query: query, columns: columns}
}

// Filename is the attachment name offered to the browser.
func (s *ExportService[T]) Filename() string {
	return "reeyo_" + s.query.Kind().Plural() + ".csv"
}

// Export writes the rows Query would return for f and o and reports how
// many rows were written.
func (s *ExportService[T]) Export(ctx context.Context, w io.Writer, f Filter, o Ordering) (int, error) {
	ctx, span := tracer.Start(ctx, "ExportService.Export")
	defer span.End()

	rows, err := s.query.Query(ctx, f, o)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("export.rows", len(rows)))
	return len(rows), utils.WriteCSV(w, rows, s.columns)
}
