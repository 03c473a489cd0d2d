package controller

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/validation"
)

// maxFeedbackBodyBytes bounds the request body of a feedback submission.
const maxFeedbackBodyBytes = 1 << 16

type FeedbackCreateRequest struct {
	InternshipID int64  `json:"internship_id" validate:"required,gt=0"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Feedback     string `json:"feedback" validate:"max=2000"`
}

type FeedbackCreateResponse struct {
	Data domain.FeedbackRecord `json:"data"`
}

// FeedbackCreate accepts a student's rating of a recommended internship,
// saves it and echoes back the feedback record.
type FeedbackCreate struct {
	Command command.Command[domain.FeedbackRecord, command.Empty]
	Now     func() time.Time
}

func (c FeedbackCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	studentID, err := studentIDFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse student id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req FeedbackCreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFeedbackBodyBytes)).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode feedback", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := validation.Struct(req); err != nil {
		logger.InfoContext(ctx, "rejected invalid feedback", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	record := domain.NewFeedbackRecord(studentID, req.InternshipID, req.Rating, req.Feedback, now())
	if _, err := c.Command.Execute(ctx, record); err != nil {
		logger.ErrorContext(ctx, "unable to save feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(FeedbackCreateResponse{Data: record}); err != nil {
		logger.ErrorContext(ctx, "unable to write feedback to response", "error", err)
	}
}
