package command

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/internship-recommender/internal/datasources/memory"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// testContext returns a context whose logger discards output.
func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

// skillsDataset is the skill-matching scenario: one student with four skills
// and three internships that overlap by 1/6, 2/6 and 4/4.
func skillsDataset(t *testing.T) *memory.Repository {
	t.Helper()
	posted := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return memory.New(memory.Dataset{
		Users: []domain.User{
			{ID: 1, Role: domain.RoleStudent, Name: "Asha"},
			{ID: 2, Role: domain.RoleStudent, Name: "Ben"},
			{ID: 10, Role: domain.RoleCompany, Name: "Acme Labs"},
			{ID: 11, Role: domain.RoleCompany, Name: "Globex"},
		},
		Profiles: []domain.Profile{
			{UserID: 1, Skills: "Python, JavaScript, React, SQL"},
			{UserID: 2, Skills: " , "},
		},
		Internships: []domain.Internship{
			{ID: 101, CompanyID: 10, Title: "A", RequiredSkills: "python, flask, django", PostedAt: posted},
			{ID: 102, CompanyID: 11, Title: "B", RequiredSkills: "javascript, react, html, css", PostedAt: posted},
			{ID: 103, CompanyID: 12, Title: "C", RequiredSkills: "python, javascript, react, sql", PostedAt: posted},
			{ID: 104, CompanyID: 10, Title: "D", RequiredSkills: "", PostedAt: posted},
		},
	})
}

// historyDataset builds a dataset containing only applications, given as
// (student, internship) pairs in application id order.
func historyDataset(pairs ...[2]int64) *memory.Repository {
	dataset := memory.Dataset{}
	seen := map[int64]bool{}
	for i, p := range pairs {
		dataset.Applications = append(dataset.Applications, domain.Application{
			ID:           int64(i + 1),
			StudentID:    p[0],
			InternshipID: p[1],
			Status:       domain.ApplicationStatusPending,
		})
		if !seen[p[1]] {
			seen[p[1]] = true
			dataset.Internships = append(dataset.Internships, domain.Internship{
				ID:        p[1],
				CompanyID: 500,
				Title:     "Internship",
			})
		}
	}
	dataset.Users = append(dataset.Users, domain.User{ID: 500, Role: domain.RoleCompany, Name: "Initech"})
	return memory.New(dataset)
}
