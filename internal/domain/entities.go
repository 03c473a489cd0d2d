package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by datasources when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID   int64  `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// Profile belongs to a student. Skills is the raw comma-separated string as stored.
type Profile struct {
	UserID     int64  `json:"user_id"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
}

type Internship struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"company_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills string    `json:"required_skills"`
	PostedAt       time.Time `json:"posted_at"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application links a student to an internship they applied to.
type Application struct {
	ID           int64             `json:"id"`
	StudentID    int64             `json:"student_id"`
	InternshipID int64             `json:"internship_id"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    time.Time         `json:"applied_at"`
}
