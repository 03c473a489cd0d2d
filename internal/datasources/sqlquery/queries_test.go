package sqlquery

import (
	"testing"

	"github.com/huandu/go-sqlbuilder"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_ApplicationsForStudents(t *testing.T) {
	cases := []struct {
		name      string
		flavor    sqlbuilder.Flavor
		wantQuery string
	}{
		{
			name:   "mysql",
			flavor: sqlbuilder.MySQL,
			wantQuery: "SELECT id, student_id, internship_id, COALESCE(status, 'pending'), applied_at " +
				"FROM applications WHERE student_id IN (?, ?) ORDER BY id ASC",
		},
		{
			name:   "postgres",
			flavor: sqlbuilder.PostgreSQL,
			wantQuery: "SELECT id, student_id, internship_id, COALESCE(status, 'pending'), applied_at " +
				"FROM applications WHERE student_id IN ($1, $2) ORDER BY id ASC",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := Builder{Flavor: tc.flavor}.ApplicationsForStudents([]int64{4, 7})
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, []any{int64(4), int64(7)}, args)
		})
	}
}

func TestBuilder_CountProfilesWithSkills(t *testing.T) {
	query, args := Builder{Flavor: sqlbuilder.PostgreSQL}.CountProfilesWithSkills()
	assert.Contains(t, query, "FROM profiles")
	assert.Contains(t, query, "skills IS NOT NULL")
	assert.Contains(t, query, "skills <> $1")
	assert.Equal(t, []any{""}, args)
}

func TestBuilder_ProfileSkills(t *testing.T) {
	query, args := Builder{Flavor: sqlbuilder.MySQL}.ProfileSkills(3)
	assert.Equal(t, "SELECT COALESCE(skills, '') FROM profiles WHERE user_id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestBuilder_Internships(t *testing.T) {
	query, args := Builder{Flavor: sqlbuilder.MySQL}.Internships()
	assert.Equal(t, "SELECT id, company_id, COALESCE(title, ''), COALESCE(description, ''), "+
		"COALESCE(required_skills, ''), posted_at FROM internships ORDER BY id ASC", query)
	assert.Empty(t, args)
}
