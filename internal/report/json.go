// Package report writes evaluation reports to their output destinations: a
// JSON document, an XLSX workbook and a console table.
package report

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// JSONFileWriter writes the report as indented JSON. Per-K tables keep the
// order the cutoffs were evaluated in.
type JSONFileWriter struct {
	Path string
}

func NewJSONFileWriter(path string) *JSONFileWriter {
	return &JSONFileWriter{Path: path}
}

// EncodeJSON returns the report document.
func EncodeJSON(report domain.EvaluationReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}

func (w *JSONFileWriter) WriteReport(ctx context.Context, report domain.EvaluationReport) error {
	data, err := EncodeJSON(report)
	if err != nil {
		return err
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil { //nolint:gosec // report is not sensitive
		return fmt.Errorf("writing report file: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "wrote evaluation report", "path", w.Path)
	return nil
}
