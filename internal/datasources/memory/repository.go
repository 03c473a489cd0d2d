// Package memory serves the dataset from an in-process snapshot, loaded from a
// JSON export of the users, profiles, internships and applications tables.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

// Dataset is the JSON document the repository is loaded from.
type Dataset struct {
	Users        []domain.User        `json:"users"`
	Profiles     []domain.Profile     `json:"profiles"`
	Internships  []domain.Internship  `json:"internships"`
	Applications []domain.Application `json:"applications"`
}

type Repository struct {
	users        map[int64]domain.User
	profiles     map[int64]domain.Profile
	internships  []domain.Internship
	byID         map[int64]domain.Internship
	applications []domain.Application
}

func New(dataset Dataset) *Repository {
	r := &Repository{
		users:        make(map[int64]domain.User, len(dataset.Users)),
		profiles:     make(map[int64]domain.Profile, len(dataset.Profiles)),
		internships:  slices.Clone(dataset.Internships),
		byID:         make(map[int64]domain.Internship, len(dataset.Internships)),
		applications: slices.Clone(dataset.Applications),
	}

	for _, u := range dataset.Users {
		r.users[u.ID] = u
	}
	for _, p := range dataset.Profiles {
		r.profiles[p.UserID] = p
	}
	for _, i := range dataset.Internships {
		r.byID[i.ID] = i
	}

	slices.SortStableFunc(r.internships, func(a, b domain.Internship) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortStableFunc(r.applications, func(a, b domain.Application) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return r
}

// Decode reads a Dataset document from r.
func Decode(r io.Reader) (Dataset, error) {
	var dataset Dataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return Dataset{}, fmt.Errorf("decoding dataset: %w", err)
	}
	return dataset, nil
}

// Load opens and decodes the dataset file at path.
func Load(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dataset, err := Decode(f)
	if err != nil {
		return nil, err
	}

	return New(dataset), nil
}

func (r *Repository) GetProfileSkills(_ context.Context, studentID int64) (string, error) {
	return r.profiles[studentID].Skills, nil
}

func (r *Repository) ListInternships(_ context.Context) ([]domain.Internship, error) {
	return slices.Clone(r.internships), nil
}

func (r *Repository) FetchInternship(_ context.Context, internshipID int64) (domain.Internship, error) {
	internship, ok := r.byID[internshipID]
	if !ok {
		return domain.Internship{}, fmt.Errorf("fetching internship [%d]: %w", internshipID, domain.ErrNotFound)
	}
	return internship, nil
}

func (r *Repository) GetUserName(_ context.Context, userID int64) (string, error) {
	user, ok := r.users[userID]
	if !ok {
		return "", fmt.Errorf("getting user [%d]: %w", userID, domain.ErrNotFound)
	}
	return user.Name, nil
}

func (r *Repository) ListApplications(_ context.Context) ([]domain.Application, error) {
	return slices.Clone(r.applications), nil
}

func (r *Repository) ListApplicationsForStudents(
	_ context.Context, studentIDs []int64,
) ([]domain.Application, error) {
	wanted := domain.NewSet(studentIDs...)

	var result []domain.Application
	for _, app := range r.applications {
		if wanted.Contains(app.StudentID) {
			result = append(result, app)
		}
	}
	return result, nil
}

func (r *Repository) CountProfilesWithSkills(_ context.Context) (int64, error) {
	var count int64
	for _, p := range r.profiles {
		if p.Skills != "" {
			count++
		}
	}
	return count, nil
}

func (r *Repository) CountInternshipsWithSkills(_ context.Context) (int64, error) {
	var count int64
	for _, i := range r.internships {
		if i.RequiredSkills != "" {
			count++
		}
	}
	return count, nil
}

func (r *Repository) CountStudents(_ context.Context) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == domain.RoleStudent {
			count++
		}
	}
	return count, nil
}

func (r *Repository) GetApplicationStats(_ context.Context) (domain.ApplicationStats, error) {
	students := domain.Set[int64]{}
	internships := domain.Set[int64]{}
	for _, app := range r.applications {
		students[app.StudentID] = struct{}{}
		internships[app.InternshipID] = struct{}{}
	}

	return domain.ApplicationStats{
		Students:     int64(len(students)),
		Internships:  int64(len(internships)),
		Applications: int64(len(r.applications)),
	}, nil
}
