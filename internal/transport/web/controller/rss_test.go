package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/internship-recommender/internal/command"
	cmdmocks "github.com/jbeshir/internship-recommender/internal/command/mocks"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommendationsRSS_ServeHTTP(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	recs := []domain.Recommendation{
		{
			ID:          103,
			Title:       "Full Stack Intern",
			Description: "Everything",
			CompanyName: "Acme Labs",
			PostedAt:    time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
		},
	}

	cases := []struct {
		name       string
		studentID  string
		recs       []domain.Recommendation
		commandErr error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "feed",
			studentID:  "1",
			recs:       recs,
			wantStatus: http.StatusOK,
			wantBody: []string{
				"<title>Recommended Internships</title>",
				"<title>Full Stack Intern</title>",
				"https://example.com/internships/103",
				"Acme Labs",
			},
		},
		{
			name:       "empty_feed",
			studentID:  "1",
			wantStatus: http.StatusOK,
			wantBody:   []string{"<title>Recommended Internships</title>"},
		},
		{
			name:       "invalid_student_id",
			studentID:  "-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "command_error",
			studentID:  "1",
			commandErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recommender := cmdmocks.NewMockCommand[command.RecommendRequest, []domain.Recommendation](t)
			if tc.studentID == "1" {
				recommender.EXPECT().
					Execute(mock.Anything, command.RecommendRequest{StudentID: 1}).
					Return(tc.recs, tc.commandErr)
			}

			controller := RecommendationsRSS{
				FeedHostname:    "https://example.com",
				FeedAuthorName:  "Careers Office",
				FeedAuthorEmail: "careers@example.com",
				Recommender:     recommender,
				CacheMaxAge:     5 * time.Minute,
				Now:             func() time.Time { return now },
			}

			rr := httptest.NewRecorder()
			controller.ServeHTTP(rr, newStudentRequest(http.MethodGet, "/students/"+tc.studentID+"/rss", tc.studentID, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			assert.Equal(t, "text/xml", rr.Header().Get("Content-Type"))
			assert.Equal(t, "max-age=300", rr.Header().Get("Cache-Control"))
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}
