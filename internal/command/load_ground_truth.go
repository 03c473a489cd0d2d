package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// LoadGroundTruthRequest selects whose applications form the ground truth.
// An empty StudentIDs loads every student with applications.
type LoadGroundTruthRequest struct {
	StudentIDs []int64
}

// LoadGroundTruth builds the student to applied-internships map evaluation
// scores recommendations against.
type LoadGroundTruth struct {
	Applications        datasources.ApplicationLister
	StudentApplications datasources.StudentApplicationLister
}

// NewLoadGroundTruth creates a properly initialized LoadGroundTruth command.
func NewLoadGroundTruth(
	applications datasources.ApplicationLister,
	studentApplications datasources.StudentApplicationLister,
) *LoadGroundTruth {
	return &LoadGroundTruth{
		Applications:        applications,
		StudentApplications: studentApplications,
	}
}

var _ Command[LoadGroundTruthRequest, domain.GroundTruth] = (*LoadGroundTruth)(nil)

func (c *LoadGroundTruth) Execute(ctx context.Context, req LoadGroundTruthRequest) (domain.GroundTruth, error) {
	var (
		applications []domain.Application
		err          error
	)
	if len(req.StudentIDs) == 0 {
		applications, err = c.Applications.ListApplications(ctx)
	} else {
		applications, err = c.StudentApplications.ListApplicationsForStudents(ctx, req.StudentIDs)
	}
	if err != nil {
		return domain.GroundTruth{}, fmt.Errorf("listing applications: %w", err)
	}

	gt := domain.NewGroundTruth(applications)
	domain.LoggerFromContext(ctx).DebugContext(ctx, "loaded ground truth",
		"students", gt.Len(), "applications", gt.TotalApplications())

	return gt, nil
}
