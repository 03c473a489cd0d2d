package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/command"
	cmdmocks "github.com/jbeshir/internship-recommender/internal/command/mocks"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackCreate_ServeHTTP(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	cases := []struct {
		name       string
		studentID  string
		body       string
		saveErr    error
		wantSave   bool
		wantStatus int
		wantRecord domain.FeedbackRecord
	}{
		{
			name:       "valid",
			studentID:  "7",
			body:       `{"internship_id": 103, "rating": 4, "feedback": "Good match"}`,
			wantSave:   true,
			wantStatus: http.StatusCreated,
			wantRecord: domain.FeedbackRecord{
				UserID: 7, InternshipID: 103, Rating: 4, Feedback: "Good match", Timestamp: now,
			},
		},
		{
			name:       "save_error",
			studentID:  "7",
			body:       `{"internship_id": 103, "rating": 4, "feedback": "Good match"}`,
			saveErr:    errors.New("store unavailable"),
			wantSave:   true,
			wantStatus: http.StatusInternalServerError,
			wantRecord: domain.FeedbackRecord{
				UserID: 7, InternshipID: 103, Rating: 4, Feedback: "Good match", Timestamp: now,
			},
		},
		{
			name:       "rating_too_high",
			studentID:  "7",
			body:       `{"internship_id": 103, "rating": 6}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rating_missing",
			studentID:  "7",
			body:       `{"internship_id": 103}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internship_missing",
			studentID:  "7",
			body:       `{"rating": 3}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "feedback_too_long",
			studentID:  "7",
			body:       `{"internship_id": 103, "rating": 3, "feedback": "` + strings.Repeat("a", 2001) + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_body",
			studentID:  "7",
			body:       `{"internship_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_student_id",
			studentID:  "x",
			body:       `{"internship_id": 103, "rating": 4}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[domain.FeedbackRecord, command.Empty](t)
			if tc.wantSave {
				cmd.EXPECT().Execute(mock.Anything, tc.wantRecord).Return(command.Empty{}, tc.saveErr)
			}
			controller := FeedbackCreate{Command: cmd, Now: func() time.Time { return now }}

			req := newStudentRequest(http.MethodPost, "/v1/students/"+tc.studentID+"/feedback",
				tc.studentID, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			controller.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus != http.StatusCreated {
				return
			}

			var response FeedbackCreateResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tc.wantRecord, response.Data)
		})
	}
}
