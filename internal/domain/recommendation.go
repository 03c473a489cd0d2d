package domain

import (
	"errors"
	"fmt"
	"time"
)

// UnknownCompanyName is shown when an internship's owning company no longer exists.
const UnknownCompanyName = "Unknown Company"

// Provenance identifies which recommender produced a recommendation.
type Provenance string

const (
	ProvenanceContentBased  Provenance = "Content-based"
	ProvenanceCollaborative Provenance = "Collaborative"
)

// Recommendation is an internship suggested to a student along with its similarity score.
type Recommendation struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RequiredSkills string     `json:"required_skills"`
	PostedAt       time.Time  `json:"posted_at"`
	CompanyName    string     `json:"company_name"`
	CompanyID      int64      `json:"company_id"`
	Similarity     float64    `json:"similarity"`
	Type           Provenance `json:"type"`
}

// NewRecommendation builds a recommendation for an internship.
func NewRecommendation(
	internship Internship,
	companyName string,
	similarity float64,
	provenance Provenance,
) Recommendation {
	return Recommendation{
		ID:             internship.ID,
		Title:          internship.Title,
		Description:    internship.Description,
		RequiredSkills: internship.RequiredSkills,
		PostedAt:       internship.PostedAt,
		CompanyName:    companyName,
		CompanyID:      internship.CompanyID,
		Similarity:     similarity,
		Type:           provenance,
	}
}

// RecommendationIDs returns the internship ids of recs, preserving rank order.
func RecommendationIDs(recs []Recommendation) []int64 {
	ids := make([]int64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	return ids
}

// MergeRecommendations combines content-based and collaborative results.
// Content results are kept in order, collaborative results with new ids are
// appended in order, and a collaborative result replaces an existing entry in
// place only when its similarity is strictly greater. The result is not re-sorted.
func MergeRecommendations(content, collaborative []Recommendation) []Recommendation {
	merged := make([]Recommendation, 0, len(content)+len(collaborative))
	positions := make(map[int64]int, len(content)+len(collaborative))

	add := func(rec Recommendation) {
		pos, exists := positions[rec.ID]
		if !exists {
			positions[rec.ID] = len(merged)
			merged = append(merged, rec)
			return
		}
		if rec.Similarity > merged[pos].Similarity {
			merged[pos] = rec
		}
	}

	for _, rec := range content {
		add(rec)
	}
	for _, rec := range collaborative {
		add(rec)
	}

	return merged
}

// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names a recommender as accepted on the command line and in A/B tests.
type Algorithm string

const (
	AlgorithmContent       Algorithm = "content"
	AlgorithmCollaborative Algorithm = "collaborative"
	AlgorithmHybrid        Algorithm = "hybrid"
)

// Algorithms lists every algorithm in evaluation order.
var Algorithms = []Algorithm{AlgorithmContent, AlgorithmCollaborative, AlgorithmHybrid}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmContent, AlgorithmCollaborative, AlgorithmHybrid:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// ReportKey is the key the algorithm's results are stored under in evaluation reports.
func (a Algorithm) ReportKey() string {
	switch a {
	case AlgorithmContent:
		return "content_based"
	case AlgorithmCollaborative:
		return "collaborative_filtering"
	case AlgorithmHybrid:
		return "hybrid"
	default:
		return string(a)
	}
}

// DisplayName is the human-readable algorithm name used in report summaries.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmContent:
		return "Content-Based"
	case AlgorithmCollaborative:
		return "Collaborative"
	case AlgorithmHybrid:
		return "Hybrid"
	default:
		return string(a)
	}
}
