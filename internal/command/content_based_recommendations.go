package command

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// ContentBasedConfig holds configuration for skill-matching recommendations.
type ContentBasedConfig struct {
	// SimilarityThreshold is the Jaccard similarity a match must exceed.
	SimilarityThreshold float64

	// Limit is the maximum number of recommendations returned.
	Limit int
}

// ContentBasedRecommendations matches a student's skills against each
// internship's required skills. It does not exclude internships the student
// has already applied to.
type ContentBasedRecommendations struct {
	SkillsGetter     datasources.ProfileSkillsGetter
	InternshipLister datasources.InternshipLister
	CompanyNames     datasources.UserNameGetter
	Config           ContentBasedConfig
}

// NewContentBasedRecommendations creates a properly initialized ContentBasedRecommendations command.
func NewContentBasedRecommendations(
	skillsGetter datasources.ProfileSkillsGetter,
	internshipLister datasources.InternshipLister,
	companyNames datasources.UserNameGetter,
	config ContentBasedConfig,
) *ContentBasedRecommendations {
	return &ContentBasedRecommendations{
		SkillsGetter:     skillsGetter,
		InternshipLister: internshipLister,
		CompanyNames:     companyNames,
		Config:           config,
	}
}

var _ Recommender = (*ContentBasedRecommendations)(nil)

// Execute returns up to Config.Limit internships whose required skills are
// more similar than Config.SimilarityThreshold, most similar first.
func (c *ContentBasedRecommendations) Execute(
	ctx context.Context, req RecommendRequest,
) ([]domain.Recommendation, error) {
	skills, err := c.SkillsGetter.GetProfileSkills(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("getting student skills: %w", err)
	}

	studentSkills := domain.ParseSkillSet(skills)
	if len(studentSkills) == 0 {
		return []domain.Recommendation{}, nil
	}

	internships, err := c.InternshipLister.ListInternships(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing internships: %w", err)
	}

	recs := []domain.Recommendation{}
	for _, internship := range internships {
		required := domain.ParseSkillSet(internship.RequiredSkills)
		if len(required) == 0 {
			continue
		}

		similarity := domain.Jaccard(studentSkills, required)
		if similarity <= c.Config.SimilarityThreshold {
			continue
		}

		companyName, err := resolveCompanyName(ctx, c.CompanyNames, internship.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("resolving company for internship [%d]: %w", internship.ID, err)
		}

		recs = append(recs, domain.NewRecommendation(
			internship, companyName, similarity, domain.ProvenanceContentBased))
	}

	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})

	if len(recs) > c.Config.Limit {
		recs = recs[:c.Config.Limit]
	}

	return recs, nil
}
