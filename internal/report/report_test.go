package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func metricsAt(values map[int]float64, ks ...int) domain.AlgorithmMetrics {
	var atK domain.AtK[float64]
	for _, k := range ks {
		atK = append(atK, domain.KValue[float64]{K: k, Value: values[k]})
	}
	return domain.AlgorithmMetrics{Precision: atK, Recall: atK, NDCG: atK, MAP: atK}
}

func testReport(t *testing.T) domain.EvaluationReport {
	t.Helper()
	report := domain.NewEvaluationReport(
		metricsAt(map[int]float64{10: 0.1, 5: 0.3}, 10, 5),
		metricsAt(map[int]float64{10: 0.2, 5: 0.1}, 10, 5),
		metricsAt(map[int]float64{10: 0.2, 5: 0.25}, 10, 5),
		time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
	)
	report.ABTest = &domain.ABTestResult{
		GroupA: domain.ABTestGroup{Algorithm: domain.AlgorithmContent, Users: 3, Results: metricsAt(map[int]float64{5: 0.5}, 5)},
		GroupB: domain.ABTestGroup{Algorithm: domain.AlgorithmHybrid, Users: 4, Results: metricsAt(map[int]float64{5: 0.7}, 5)},
	}
	return report
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON(testReport(t))
	require.NoError(t, err)

	doc := string(data)
	assert.Less(t, strings.Index(doc, `"10"`), strings.Index(doc, `"5"`), "K keys keep evaluation order")
	assert.Contains(t, doc, `"timestamp": "2025-03-04T05:06:07.000000"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.ElementsMatch(t, []string{"timestamp", "algorithms", "comparison", "summary", "ab_test"}, keys(decoded))

	comparison := decoded["comparison"].(map[string]any)["precision"].(map[string]any)["5"].(map[string]any)
	assert.Equal(t, "content_based", comparison["best_algorithm"])
	assert.InDelta(t, 0.25, comparison["hybrid"], 0.0001)

	best := decoded["summary"].(map[string]any)["best_overall"].(map[string]any)["recall"].(map[string]any)["10"].(map[string]any)
	assert.Equal(t, "collaborative_filtering", best["algorithm"])

	group := decoded["ab_test"].(map[string]any)["group_b"].(map[string]any)
	assert.Equal(t, "hybrid", group["algorithm"])
	assert.InDelta(t, 4, group["users"], 0)
}

func TestEncodeJSON_OmitsMissingABTest(t *testing.T) {
	report := testReport(t)
	report.ABTest = nil

	data, err := EncodeJSON(report)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ab_test")
}

func TestJSONFileWriter_WriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation_report.json")

	require.NoError(t, NewJSONFileWriter(path).WriteReport(context.Background(), testReport(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestJSONFileWriter_WriteReport_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")

	err := NewJSONFileWriter(path).WriteReport(context.Background(), testReport(t))
	require.Error(t, err)
}

func TestEncodeXLSX(t *testing.T) {
	data, err := EncodeXLSX(testReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"PRECISION", "RECALL", "NDCG", "MAP", "Summary", "AB Test"}, f.GetSheetList())

	rows, err := f.GetRows("PRECISION")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, comparisonHeaders, rows[0])
	assert.Equal(t, "10", rows[1][0])
	assert.Equal(t, "collaborative_filtering", rows[1][4])
	assert.Equal(t, "5", rows[2][0])
	assert.Equal(t, "content_based", rows[2][4])

	summary, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04T05:06:07.000000", summary)

	abRows, err := f.GetRows("AB Test")
	require.NoError(t, err)
	assert.Len(t, abRows, 9)
}

func TestConsoleWriter_WriteReport(t *testing.T) {
	report := testReport(t)
	for len(report.Summary.Recommendations) < 12 {
		report.Summary.Recommendations = append(report.Summary.Recommendations, "extra")
	}

	var out bytes.Buffer
	require.NoError(t, NewConsoleWriter(&out).WriteReport(context.Background(), report))

	printed := out.String()
	assert.Contains(t, printed, "COMPREHENSIVE EVALUATION REPORT")
	assert.Contains(t, printed, "Generated at: 2025-03-04T05:06:07.000000")
	assert.Contains(t, printed, "NDCG:")
	assert.Contains(t, printed, "5          0.3000               0.1000               0.2500               content_based")
	assert.Less(t, strings.Index(printed, "\n5     "), strings.Index(printed, "\n10    "), "K rows are printed ascending")
	assert.Contains(t, printed, "  • Hybrid performs best for PRECISION@10")
	assert.Contains(t, printed, "Group B (hybrid): 4 users")
	assert.Equal(t, 10, strings.Count(printed, "  • "), "only the first ten suggestions are printed")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
