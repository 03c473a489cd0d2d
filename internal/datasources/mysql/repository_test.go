package mysql

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY,
		email VARCHAR(255),
		password VARCHAR(255),
		role VARCHAR(32) NOT NULL,
		name VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id BIGINT PRIMARY KEY,
		skills TEXT,
		education TEXT,
		experience TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS internships (
		id BIGINT PRIMARY KEY,
		company_id BIGINT NOT NULL,
		title VARCHAR(255),
		description TEXT,
		required_skills TEXT,
		posted_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGINT PRIMARY KEY,
		student_id BIGINT NOT NULL,
		internship_id BIGINT NOT NULL,
		applied_at DATETIME,
		status VARCHAR(32) DEFAULT 'pending'
	)`,
}

var testFixtures = []string{
	`INSERT INTO users (id, role, name) VALUES
		(1, 'student', 'Asha'), (2, 'student', 'Ben'), (3, 'student', 'Chen'), (10, 'company', 'Acme Labs')`,
	`INSERT INTO profiles (user_id, skills) VALUES (1, 'Python, SQL'), (2, NULL)`,
	`INSERT INTO internships (id, company_id, title, description, required_skills, posted_at) VALUES
		(102, 10, 'Frontend Intern', NULL, 'javascript, react', '2025-01-02 09:00:00'),
		(101, 10, 'Backend Intern', 'APIs', 'python, sql', '2025-01-01 09:00:00'),
		(103, 10, 'Ops Intern', 'Ops', '', NULL)`,
	`INSERT INTO applications (id, student_id, internship_id, status) VALUES
		(2, 2, 101, 'accepted'), (1, 1, 101, NULL), (3, 2, 102, 'pending')`,
}

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("skipping MySQL integration tests, MYSQL_URI not set")
	}

	db, err := Connect(context.Background(), uri)
	require.NoError(t, err)

	for _, stmt := range testSchema {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
	for _, stmt := range testFixtures {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}

	t.Cleanup(func() { teardownTestDB(t, db) })

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	for _, table := range []string{"applications", "internships", "profiles", "users"} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		assert.NoError(t, err)
	}

	assert.NoError(t, db.Close())
}

func TestRepository_GetProfileSkills(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	skills, err := repo.GetProfileSkills(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Python, SQL", skills)

	skills, err = repo.GetProfileSkills(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, skills, "NULL skills")

	skills, err = repo.GetProfileSkills(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, skills, "no profile")
}

func TestRepository_Internships(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	internships, err := repo.ListInternships(ctx)
	require.NoError(t, err)
	require.Len(t, internships, 3)
	assert.Equal(t, int64(101), internships[0].ID)
	assert.Equal(t, int64(102), internships[1].ID)
	assert.Empty(t, internships[1].Description)
	assert.True(t, internships[2].PostedAt.IsZero())

	internship, err := repo.FetchInternship(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", internship.Title)

	_, err = repo.FetchInternship(ctx, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepository_GetUserName(t *testing.T) {
	repo := New(setupTestDB(t))

	name, err := repo.GetUserName(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", name)

	_, err = repo.GetUserName(context.Background(), 11)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepository_Applications(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	all, err := repo.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, domain.ApplicationStatusPending, all[0].Status)

	filtered, err := repo.ListApplicationsForStudents(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, domain.ApplicationStatusAccepted, filtered[0].Status)

	none, err := repo.ListApplicationsForStudents(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_CoverageCounts(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	profiles, err := repo.CountProfilesWithSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profiles)

	internships, err := repo.CountInternshipsWithSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), internships)

	students, err := repo.CountStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), students)

	stats, err := repo.GetApplicationStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStats{Students: 2, Internships: 2, Applications: 3}, stats)
}
