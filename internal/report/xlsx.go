package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	abTestSheet  = "AB Test"
)

var comparisonHeaders = []string{"K", "Content-Based", "Collaborative", "Hybrid", "Best"}

// XLSXFileWriter exports the report as a workbook with one comparison sheet
// per metric, a summary sheet and, when present, an A/B test sheet.
type XLSXFileWriter struct {
	Path string
}

func NewXLSXFileWriter(path string) *XLSXFileWriter {
	return &XLSXFileWriter{Path: path}
}

func (w *XLSXFileWriter) WriteReport(ctx context.Context, report domain.EvaluationReport) error {
	data, err := EncodeXLSX(report)
	if err != nil {
		return err
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil { //nolint:gosec // report is not sensitive
		return fmt.Errorf("writing workbook file: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "wrote evaluation workbook", "path", w.Path)
	return nil
}

// MetricSheetName is the workbook sheet holding a metric's comparison table.
func MetricSheetName(metric domain.Metric) string {
	return strings.ToUpper(string(metric))
}

// EncodeXLSX renders the report as an XLSX workbook.
func EncodeXLSX(report domain.EvaluationReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	scoreFormat := "0.0000"
	scoreStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &scoreFormat})
	if err != nil {
		return nil, fmt.Errorf("creating score style: %w", err)
	}

	for i, metric := range domain.ReportMetrics {
		sheet := MetricSheetName(metric)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("renaming first sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", sheet, err)
		}

		if err := writeComparisonSheet(f, sheet, report.Comparison.Get(metric), headerStyle, scoreStyle); err != nil {
			return nil, fmt.Errorf("writing %s sheet: %w", sheet, err)
		}
	}

	if err := writeSummarySheet(f, report, headerStyle); err != nil {
		return nil, fmt.Errorf("writing summary sheet: %w", err)
	}

	if report.ABTest != nil {
		if err := writeABTestSheet(f, *report.ABTest, headerStyle, scoreStyle); err != nil {
			return nil, fmt.Errorf("writing a/b test sheet: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	endCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", endCell, style); err != nil {
		return err
	}

	endCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", endCol, 20)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeComparisonSheet(
	f *excelize.File, sheet string, rows domain.AtK[domain.ComparisonEntry], headerStyle, scoreStyle int,
) error {
	if err := writeHeaders(f, sheet, comparisonHeaders, headerStyle); err != nil {
		return err
	}

	for i, kv := range rows {
		if err := writeRow(f, sheet, i+2,
			kv.K, kv.Value.ContentBased, kv.Value.CollaborativeFiltering, kv.Value.Hybrid, kv.Value.BestAlgorithm,
		); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}
	endCell, err := excelize.CoordinatesToCellName(4, len(rows)+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "B2", endCell, scoreStyle)
}

func writeSummarySheet(f *excelize.File, report domain.EvaluationReport, headerStyle int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := writeHeaders(f, summarySheet, []string{"Generated At", "Recommendation"}, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 60); err != nil {
		return err
	}

	if err := writeRow(f, summarySheet, 2, report.Timestamp); err != nil {
		return err
	}
	for i, rec := range report.Summary.Recommendations {
		cell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeABTestSheet(f *excelize.File, result domain.ABTestResult, headerStyle, scoreStyle int) error {
	if _, err := f.NewSheet(abTestSheet); err != nil {
		return err
	}
	headers := []string{"Group", "Algorithm", "Users", "Metric", "K", "Score"}
	if err := writeHeaders(f, abTestSheet, headers, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, group := range []struct {
		name  string
		group domain.ABTestGroup
	}{{"A", result.GroupA}, {"B", result.GroupB}} {
		for _, metric := range domain.ReportMetrics {
			for _, kv := range group.group.Results.Get(metric) {
				if err := writeRow(f, abTestSheet, row,
					group.name, string(group.group.Algorithm), group.group.Users, string(metric), kv.K, kv.Value,
				); err != nil {
					return err
				}
				row++
			}
		}
	}

	if row == 2 {
		return nil
	}
	endCell, err := excelize.CoordinatesToCellName(6, row-1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(abTestSheet, "F2", endCell, scoreStyle)
}
