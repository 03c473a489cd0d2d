package datasources

import (
	"context"
	"errors"

	"github.com/jbeshir/internship-recommender/internal/domain"
)

// ErrUnknownDriver is returned when a datasource driver name is not recognised.
var ErrUnknownDriver = errors.New("unknown datasource driver")

// DatasetRepository is the read-only view of users, profiles, internships and
// applications the recommenders and evaluation harness run against.
type DatasetRepository interface {
	ProfileSkillsGetter
	InternshipLister
	InternshipFetcher
	UserNameGetter
	ApplicationLister
	StudentApplicationLister
	CoverageCounter
}

type ProfileSkillsGetter interface {
	// GetProfileSkills returns the student's raw skills string, or "" when the
	// student has no profile or no skills.
	GetProfileSkills(ctx context.Context, studentID int64) (string, error)
}

type InternshipLister interface {
	// ListInternships returns every internship ordered by id.
	ListInternships(ctx context.Context) ([]domain.Internship, error)
}

type InternshipFetcher interface {
	// FetchInternship returns domain.ErrNotFound when the internship does not exist.
	FetchInternship(ctx context.Context, internshipID int64) (domain.Internship, error)
}

type UserNameGetter interface {
	// GetUserName returns domain.ErrNotFound when the user does not exist.
	GetUserName(ctx context.Context, userID int64) (string, error)
}

type ApplicationLister interface {
	// ListApplications returns every application ordered by id.
	ListApplications(ctx context.Context) ([]domain.Application, error)
}

type StudentApplicationLister interface {
	// ListApplicationsForStudents returns the applications of the given
	// students ordered by id. An empty studentIDs returns no applications.
	ListApplicationsForStudents(ctx context.Context, studentIDs []int64) ([]domain.Application, error)
}

type CoverageCounter interface {
	CountProfilesWithSkills(ctx context.Context) (int64, error)
	CountInternshipsWithSkills(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	GetApplicationStats(ctx context.Context) (domain.ApplicationStats, error)
}

type FeedbackSaver interface {
	SaveFeedback(ctx context.Context, record domain.FeedbackRecord) error
}

type FeedbackLister interface {
	// ListFeedback returns every saved record in submission order.
	ListFeedback(ctx context.Context) ([]domain.FeedbackRecord, error)
}
