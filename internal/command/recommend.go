package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// RecommendRequest asks for internship recommendations for one student.
type RecommendRequest struct {
	StudentID int64

	// ExcludeInternshipIDs are removed from the student's application history
	// before peers are found, to simulate a held-out test set. Only the
	// collaborative recommender uses it.
	ExcludeInternshipIDs []int64
}

// Recommender is implemented by every recommendation command.
type Recommender = Command[RecommendRequest, []domain.Recommendation]

// resolveCompanyName falls back to domain.UnknownCompanyName when the company no longer exists.
func resolveCompanyName(ctx context.Context, names datasources.UserNameGetter, companyID int64) (string, error) {
	name, err := names.GetUserName(ctx, companyID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.UnknownCompanyName, nil
	}
	if err != nil {
		return "", fmt.Errorf("getting company name: %w", err)
	}
	return name, nil
}
