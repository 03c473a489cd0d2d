package domain

// ContentBasedValidation reports whether there is enough skill data for content-based matching.
type ContentBasedValidation struct {
	UsersWithSkills       int64 `json:"users_with_skills"`
	InternshipsWithSkills int64 `json:"internships_with_skills"`
	Coverage              bool  `json:"coverage"`
}

func NewContentBasedValidation(usersWithSkills, internshipsWithSkills int64) ContentBasedValidation {
	return ContentBasedValidation{
		UsersWithSkills:       usersWithSkills,
		InternshipsWithSkills: internshipsWithSkills,
		Coverage:              usersWithSkills > 0 && internshipsWithSkills > 0,
	}
}

// ApplicationStats summarises the applications table.
type ApplicationStats struct {
	Students     int64
	Internships  int64
	Applications int64
}

// CollaborativeValidation reports cold start and sparsity of the user-item matrix.
type CollaborativeValidation struct {
	TotalStudents              int64   `json:"total_students"`
	UsersWithApplications      int64   `json:"users_with_applications"`
	ColdStartUsers             int64   `json:"cold_start_users"`
	Sparsity                   float64 `json:"sparsity"`
	AverageApplicationsPerUser float64 `json:"average_applications_per_user"`
}

// NewCollaborativeValidation computes sparsity over the students and internships
// that appear in applications; with no applications the matrix is fully sparse.
func NewCollaborativeValidation(totalStudents int64, stats ApplicationStats) CollaborativeValidation {
	possible := int64(1)
	if stats.Students > 0 && stats.Internships > 0 {
		possible = stats.Students * stats.Internships
	}

	var average float64
	if stats.Students > 0 {
		average = float64(stats.Applications) / float64(stats.Students)
	}

	return CollaborativeValidation{
		TotalStudents:              totalStudents,
		UsersWithApplications:      stats.Students,
		ColdStartUsers:             totalStudents - stats.Students,
		Sparsity:                   1 - float64(stats.Applications)/float64(possible),
		AverageApplicationsPerUser: average,
	}
}

type HybridValidation struct {
	ContentBased           ContentBasedValidation  `json:"content_based"`
	CollaborativeFiltering CollaborativeValidation `json:"collaborative_filtering"`
	HybridReady            bool                    `json:"hybrid_ready"`
}

func NewHybridValidation(content ContentBasedValidation, collaborative CollaborativeValidation) HybridValidation {
	return HybridValidation{
		ContentBased:           content,
		CollaborativeFiltering: collaborative,
		HybridReady:            content.Coverage && collaborative.UsersWithApplications > 0,
	}
}
