package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// ValidateAlgorithms reports whether the dataset can support each recommender:
// skill coverage for content-based matching, and cold start and sparsity of
// the application matrix for collaborative filtering.
type ValidateAlgorithms struct {
	Counter datasources.CoverageCounter
}

// NewValidateAlgorithms creates a properly initialized ValidateAlgorithms command.
func NewValidateAlgorithms(counter datasources.CoverageCounter) *ValidateAlgorithms {
	return &ValidateAlgorithms{Counter: counter}
}

var _ Command[Empty, domain.HybridValidation] = (*ValidateAlgorithms)(nil)

func (c *ValidateAlgorithms) Execute(ctx context.Context, _ Empty) (domain.HybridValidation, error) {
	content, err := c.validateContentBased(ctx)
	if err != nil {
		return domain.HybridValidation{}, err
	}

	collaborative, err := c.validateCollaborative(ctx)
	if err != nil {
		return domain.HybridValidation{}, err
	}

	return domain.NewHybridValidation(content, collaborative), nil
}

func (c *ValidateAlgorithms) validateContentBased(ctx context.Context) (domain.ContentBasedValidation, error) {
	profiles, err := c.Counter.CountProfilesWithSkills(ctx)
	if err != nil {
		return domain.ContentBasedValidation{}, fmt.Errorf("counting profiles with skills: %w", err)
	}

	internships, err := c.Counter.CountInternshipsWithSkills(ctx)
	if err != nil {
		return domain.ContentBasedValidation{}, fmt.Errorf("counting internships with skills: %w", err)
	}

	return domain.NewContentBasedValidation(profiles, internships), nil
}

func (c *ValidateAlgorithms) validateCollaborative(ctx context.Context) (domain.CollaborativeValidation, error) {
	students, err := c.Counter.CountStudents(ctx)
	if err != nil {
		return domain.CollaborativeValidation{}, fmt.Errorf("counting students: %w", err)
	}

	stats, err := c.Counter.GetApplicationStats(ctx)
	if err != nil {
		return domain.CollaborativeValidation{}, fmt.Errorf("getting application stats: %w", err)
	}

	return domain.NewCollaborativeValidation(students, stats), nil
}
