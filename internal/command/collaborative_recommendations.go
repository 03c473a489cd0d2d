package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// CollaborativeConfig holds configuration for application-history recommendations.
type CollaborativeConfig struct {
	// PeerCount is how many of the most similar students are drawn from.
	PeerCount int

	// Limit is the maximum number of recommendations returned. Evaluation
	// uses a deeper list than live serving so recall can be measured at larger K.
	Limit int
}

// CollaborativeRecommendations recommends internships that the students with
// the most similar application history applied to.
type CollaborativeRecommendations struct {
	ApplicationLister datasources.ApplicationLister
	InternshipFetcher datasources.InternshipFetcher
	CompanyNames      datasources.UserNameGetter
	Config            CollaborativeConfig
}

// NewCollaborativeRecommendations creates a properly initialized CollaborativeRecommendations command.
func NewCollaborativeRecommendations(
	applicationLister datasources.ApplicationLister,
	internshipFetcher datasources.InternshipFetcher,
	companyNames datasources.UserNameGetter,
	config CollaborativeConfig,
) *CollaborativeRecommendations {
	return &CollaborativeRecommendations{
		ApplicationLister: applicationLister,
		InternshipFetcher: internshipFetcher,
		CompanyNames:      companyNames,
		Config:            config,
	}
}

var _ Recommender = (*CollaborativeRecommendations)(nil)

// Execute walks the top Config.PeerCount peers in similarity order and each
// peer's applications in retrieval order, emitting internships the student
// has not applied to. Each recommendation carries its peer's similarity.
// Students without history get no recommendations.
func (c *CollaborativeRecommendations) Execute(
	ctx context.Context, req RecommendRequest,
) ([]domain.Recommendation, error) {
	applications, err := c.ApplicationLister.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	matrix := domain.BuildUserItemMatrix(applications)

	current := matrix.ItemSet(req.StudentID).Difference(domain.NewSet(req.ExcludeInternshipIDs...))
	if len(current) == 0 {
		return []domain.Recommendation{}, nil
	}

	peers := matrix.SimilarStudents(req.StudentID, current)
	if len(peers) > c.Config.PeerCount {
		peers = peers[:c.Config.PeerCount]
	}

	recs := []domain.Recommendation{}
	seen := domain.NewSet[int64]()
	for id := range current {
		seen[id] = struct{}{}
	}

	for _, peer := range peers {
		for _, internshipID := range matrix.Items(peer.StudentID) {
			if len(recs) >= c.Config.Limit {
				return recs, nil
			}
			if seen.Contains(internshipID) {
				continue
			}

			internship, err := c.InternshipFetcher.FetchInternship(ctx, internshipID)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("fetching internship [%d]: %w", internshipID, err)
			}

			companyName, err := resolveCompanyName(ctx, c.CompanyNames, internship.CompanyID)
			if err != nil {
				return nil, fmt.Errorf("resolving company for internship [%d]: %w", internship.ID, err)
			}

			recs = append(recs, domain.NewRecommendation(
				internship, companyName, peer.Similarity, domain.ProvenanceCollaborative))
			seen[internshipID] = struct{}{}
		}
	}

	return recs, nil
}
