package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ReportTimestampLayout matches the ISO 8601 local timestamps existing report consumers parse.
const ReportTimestampLayout = "2006-01-02T15:04:05.000000"

type Metric string

const (
	MetricPrecision Metric = "precision"
	MetricRecall    Metric = "recall"
	MetricNDCG      Metric = "ndcg"
	MetricMAP       Metric = "map"
)

// ReportMetrics lists the metrics compared in a report, in output order.
var ReportMetrics = []Metric{MetricPrecision, MetricRecall, MetricNDCG, MetricMAP}

// summaryMetrics get a natural-language verdict per k in the report summary.
var summaryMetrics = []Metric{MetricPrecision, MetricRecall, MetricNDCG}

// KValue is a value computed at ranking cutoff K.
type KValue[V any] struct {
	K     int
	Value V
}

// AtK holds one value per cutoff, in the order the cutoffs were evaluated.
// It marshals to a JSON object keyed by K that keeps that order.
type AtK[V any] []KValue[V]

func (a AtK[V]) Get(k int) (V, bool) {
	for _, kv := range a {
		if kv.K == k {
			return kv.Value, true
		}
	}
	var zero V
	return zero, false
}

func (a AtK[V]) Ks() []int {
	ks := make([]int, 0, len(a))
	for _, kv := range a {
		ks = append(ks, kv.K)
	}
	return ks
}

func (a AtK[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(kv.K)))
		buf.WriteByte(':')
		value, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("marshalling value at k=%d: %w", kv.K, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MetricTable holds a per-K table for each reported metric.
type MetricTable[V any] struct {
	Precision AtK[V] `json:"precision"`
	Recall    AtK[V] `json:"recall"`
	NDCG      AtK[V] `json:"ndcg"`
	MAP       AtK[V] `json:"map"`
}

func (t MetricTable[V]) Get(metric Metric) AtK[V] {
	switch metric {
	case MetricPrecision:
		return t.Precision
	case MetricRecall:
		return t.Recall
	case MetricNDCG:
		return t.NDCG
	case MetricMAP:
		return t.MAP
	default:
		return nil
	}
}

func (t *MetricTable[V]) set(metric Metric, values AtK[V]) {
	switch metric {
	case MetricPrecision:
		t.Precision = values
	case MetricRecall:
		t.Recall = values
	case MetricNDCG:
		t.NDCG = values
	case MetricMAP:
		t.MAP = values
	}
}

// AlgorithmMetrics is one algorithm's averaged scores per metric per K.
type AlgorithmMetrics = MetricTable[float64]

// Score returns the metric at k, or 0 when it was not computed.
func Score(m AlgorithmMetrics, metric Metric, k int) float64 {
	v, _ := m.Get(metric).Get(k)
	return v
}

type ComparisonEntry struct {
	ContentBased           float64 `json:"content_based"`
	CollaborativeFiltering float64 `json:"collaborative_filtering"`
	Hybrid                 float64 `json:"hybrid"`
	BestAlgorithm          string  `json:"best_algorithm"`
}

// ScoreFor returns the score stored under an algorithm's report key.
func (e ComparisonEntry) ScoreFor(reportKey string) float64 {
	switch reportKey {
	case AlgorithmContent.ReportKey():
		return e.ContentBased
	case AlgorithmCollaborative.ReportKey():
		return e.CollaborativeFiltering
	default:
		return e.Hybrid
	}
}

type BestScore struct {
	Algorithm string  `json:"algorithm"`
	Score     float64 `json:"score"`
}

type ReportAlgorithms struct {
	ContentBased           AlgorithmMetrics `json:"content_based"`
	CollaborativeFiltering AlgorithmMetrics `json:"collaborative_filtering"`
	Hybrid                 AlgorithmMetrics `json:"hybrid"`
}

type ReportSummary struct {
	BestOverall     MetricTable[BestScore] `json:"best_overall"`
	Recommendations []string               `json:"recommendations"`
}

// ABTestGroup is one arm of an A/B test.
type ABTestGroup struct {
	Algorithm Algorithm        `json:"algorithm"`
	Users     int              `json:"users"`
	Results   AlgorithmMetrics `json:"results"`
}

type ABTestResult struct {
	GroupA ABTestGroup `json:"group_a"`
	GroupB ABTestGroup `json:"group_b"`
}

// EvaluationReport compares the three recommenders across metrics and cutoffs.
type EvaluationReport struct {
	Timestamp  string                       `json:"timestamp"`
	Algorithms ReportAlgorithms             `json:"algorithms"`
	Comparison MetricTable[ComparisonEntry] `json:"comparison"`
	Summary    ReportSummary                `json:"summary"`
	ABTest     *ABTestResult                `json:"ab_test,omitempty"`
}

// Ks returns the cutoffs the report covers, taken from the content-based precision table.
func (r EvaluationReport) Ks() []int {
	return r.Algorithms.ContentBased.Precision.Ks()
}

// NewEvaluationReport builds the comparison and summary sections from each
// algorithm's metrics. Ties for best algorithm go to the earliest in
// evaluation order.
func NewEvaluationReport(
	content, collaborative, hybrid AlgorithmMetrics,
	generatedAt time.Time,
) EvaluationReport {
	report := EvaluationReport{
		Timestamp: generatedAt.Format(ReportTimestampLayout),
		Algorithms: ReportAlgorithms{
			ContentBased:           content,
			CollaborativeFiltering: collaborative,
			Hybrid:                 hybrid,
		},
		Summary: ReportSummary{Recommendations: []string{}},
	}

	ks := content.Precision.Ks()

	for _, metric := range ReportMetrics {
		comparison := make(AtK[ComparisonEntry], 0, len(ks))
		best := make(AtK[BestScore], 0, len(ks))

		for _, k := range ks {
			entry := ComparisonEntry{
				ContentBased:           Score(content, metric, k),
				CollaborativeFiltering: Score(collaborative, metric, k),
				Hybrid:                 Score(hybrid, metric, k),
			}

			bestAlgorithm := AlgorithmContent
			for _, a := range Algorithms[1:] {
				if entry.ScoreFor(a.ReportKey()) > entry.ScoreFor(bestAlgorithm.ReportKey()) {
					bestAlgorithm = a
				}
			}
			entry.BestAlgorithm = bestAlgorithm.ReportKey()

			comparison = append(comparison, KValue[ComparisonEntry]{K: k, Value: entry})
			best = append(best, KValue[BestScore]{K: k, Value: BestScore{
				Algorithm: entry.BestAlgorithm,
				Score:     entry.ScoreFor(entry.BestAlgorithm),
			}})
		}

		report.Comparison.set(metric, comparison)
		report.Summary.BestOverall.set(metric, best)
	}

	for _, metric := range summaryMetrics {
		for _, kv := range report.Comparison.Get(metric) {
			report.Summary.Recommendations = append(report.Summary.Recommendations,
				fmt.Sprintf("%s performs best for %s@%d",
					summaryWinner(kv.Value).DisplayName(), strings.ToUpper(string(metric)), kv.K))
		}
	}

	return report
}

// summaryWinner prefers hybrid, then content-based, when scores tie.
func summaryWinner(e ComparisonEntry) Algorithm {
	switch {
	case e.Hybrid >= e.ContentBased && e.Hybrid >= e.CollaborativeFiltering:
		return AlgorithmHybrid
	case e.ContentBased >= e.CollaborativeFiltering:
		return AlgorithmContent
	default:
		return AlgorithmCollaborative
	}
}
