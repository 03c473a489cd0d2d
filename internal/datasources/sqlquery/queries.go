// Package sqlquery builds the dataset queries shared by the relational
// datasources. Each builder returns the query text and its arguments in the
// placeholder style of the configured flavor.
package sqlquery

import (
	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// InternshipColumns are selected, in this order, by the internship queries.
var InternshipColumns = []string{
	"id",
	"company_id",
	"COALESCE(title, '')",
	"COALESCE(description, '')",
	"COALESCE(required_skills, '')",
	"posted_at",
}

// ApplicationColumns are selected, in this order, by the application queries.
var ApplicationColumns = []string{
	"id",
	"student_id",
	"internship_id",
	"COALESCE(status, '" + string(domain.ApplicationStatusPending) + "')",
	"applied_at",
}

type Builder struct {
	Flavor sqlbuilder.Flavor
}

func (b Builder) ProfileSkills(studentID int64) (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select("COALESCE(skills, '')")
	sb.From("profiles")
	sb.Where(sb.Equal("user_id", studentID))
	return sb.Build()
}

func (b Builder) Internships() (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select(InternshipColumns...)
	sb.From("internships")
	sb.OrderBy("id").Asc()
	return sb.Build()
}

func (b Builder) InternshipByID(internshipID int64) (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select(InternshipColumns...)
	sb.From("internships")
	sb.Where(sb.Equal("id", internshipID))
	return sb.Build()
}

func (b Builder) UserName(userID int64) (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select("COALESCE(name, '')")
	sb.From("users")
	sb.Where(sb.Equal("id", userID))
	return sb.Build()
}

func (b Builder) Applications() (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select(ApplicationColumns...)
	sb.From("applications")
	sb.OrderBy("id").Asc()
	return sb.Build()
}

// ApplicationsForStudents must not be called with an empty studentIDs, since
// an empty IN list is not valid SQL.
func (b Builder) ApplicationsForStudents(studentIDs []int64) (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select(ApplicationColumns...)
	sb.From("applications")
	sb.Where(sb.In("student_id", sqlbuilder.Flatten(studentIDs)...))
	sb.OrderBy("id").Asc()
	return sb.Build()
}

func (b Builder) CountProfilesWithSkills() (string, []any) {
	return b.countNonEmpty("profiles", "skills")
}

func (b Builder) CountInternshipsWithSkills() (string, []any) {
	return b.countNonEmpty("internships", "required_skills")
}

func (b Builder) countNonEmpty(table, column string) (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From(table)
	sb.Where(sb.IsNotNull(column), sb.NotEqual(column, ""))
	return sb.Build()
}

func (b Builder) CountStudents() (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("users")
	sb.Where(sb.Equal("role", string(domain.RoleStudent)))
	return sb.Build()
}

// ApplicationStats selects distinct students, distinct internships and total applications.
func (b Builder) ApplicationStats() (string, []any) {
	sb := b.Flavor.NewSelectBuilder()
	sb.Select("COUNT(DISTINCT student_id)", "COUNT(DISTINCT internship_id)", "COUNT(*)")
	sb.From("applications")
	return sb.Build()
}
