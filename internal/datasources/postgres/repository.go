package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/datasources/sqlquery"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	pool    *pgxpool.Pool
	queries sqlquery.Builder
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool, queries: sqlquery.Builder{Flavor: sqlbuilder.PostgreSQL}}
}

func (r *Repository) GetProfileSkills(ctx context.Context, studentID int64) (string, error) {
	query, args := r.queries.ProfileSkills(studentID)

	var skills string
	err := r.pool.QueryRow(ctx, query, args...).Scan(&skills)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting profile skills: %w", err)
	}
	return skills, nil
}

func (r *Repository) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	query, args := r.queries.Internships()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running internships query: %w", err)
	}
	defer rows.Close()

	var internships []domain.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, internship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return internships, nil
}

func (r *Repository) FetchInternship(ctx context.Context, internshipID int64) (domain.Internship, error) {
	query, args := r.queries.InternshipByID(internshipID)

	internship, err := scanInternship(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Internship{}, fmt.Errorf("fetching internship [%d]: %w", internshipID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Internship{}, fmt.Errorf("fetching internship [%d]: %w", internshipID, err)
	}
	return internship, nil
}

func (r *Repository) GetUserName(ctx context.Context, userID int64) (string, error) {
	query, args := r.queries.UserName(userID)

	var name string
	err := r.pool.QueryRow(ctx, query, args...).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("getting user [%d]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("getting user [%d]: %w", userID, err)
	}
	return name, nil
}

func (r *Repository) ListApplications(ctx context.Context) ([]domain.Application, error) {
	query, args := r.queries.Applications()
	return r.listApplications(ctx, query, args)
}

func (r *Repository) ListApplicationsForStudents(
	ctx context.Context, studentIDs []int64,
) ([]domain.Application, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	query, args := r.queries.ApplicationsForStudents(studentIDs)
	return r.listApplications(ctx, query, args)
}

func (r *Repository) listApplications(ctx context.Context, query string, args []any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running applications query: %w", err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		var status string
		var appliedAt *time.Time
		if err := rows.Scan(&app.ID, &app.StudentID, &app.InternshipID, &status, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning applications: %w", err)
		}
		app.Status = domain.ApplicationStatus(status)
		if appliedAt != nil {
			app.AppliedAt = *appliedAt
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return applications, nil
}

func (r *Repository) CountProfilesWithSkills(ctx context.Context) (int64, error) {
	query, args := r.queries.CountProfilesWithSkills()
	return r.count(ctx, "profiles with skills", query, args)
}

func (r *Repository) CountInternshipsWithSkills(ctx context.Context) (int64, error) {
	query, args := r.queries.CountInternshipsWithSkills()
	return r.count(ctx, "internships with skills", query, args)
}

func (r *Repository) CountStudents(ctx context.Context) (int64, error) {
	query, args := r.queries.CountStudents()
	return r.count(ctx, "students", query, args)
}

func (r *Repository) count(ctx context.Context, what, query string, args []any) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", what, err)
	}
	return count, nil
}

func (r *Repository) GetApplicationStats(ctx context.Context) (domain.ApplicationStats, error) {
	query, args := r.queries.ApplicationStats()

	var stats domain.ApplicationStats
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.Students,
		&stats.Internships,
		&stats.Applications,
	); err != nil {
		return domain.ApplicationStats{}, fmt.Errorf("getting application stats: %w", err)
	}
	return stats, nil
}

func scanInternship(row pgx.Row) (domain.Internship, error) {
	var internship domain.Internship
	var postedAt *time.Time
	if err := row.Scan(
		&internship.ID,
		&internship.CompanyID,
		&internship.Title,
		&internship.Description,
		&internship.RequiredSkills,
		&postedAt,
	); err != nil {
		return domain.Internship{}, fmt.Errorf("scanning internship: %w", err)
	}
	if postedAt != nil {
		internship.PostedAt = *postedAt
	}
	return internship, nil
}
