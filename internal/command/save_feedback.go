package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// SaveFeedback stores a student's rating of a recommended internship.
type SaveFeedback struct {
	Saver datasources.FeedbackSaver
}

// NewSaveFeedback creates a properly initialized SaveFeedback command.
func NewSaveFeedback(saver datasources.FeedbackSaver) *SaveFeedback {
	return &SaveFeedback{Saver: saver}
}

var _ Command[domain.FeedbackRecord, Empty] = (*SaveFeedback)(nil)

func (c *SaveFeedback) Execute(ctx context.Context, record domain.FeedbackRecord) (Empty, error) {
	if err := c.Saver.SaveFeedback(ctx, record); err != nil {
		return Empty{}, fmt.Errorf("saving feedback from student [%d]: %w", record.UserID, err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "saved feedback",
		"student_id", record.UserID, "internship_id", record.InternshipID, "rating", record.Rating)

	return Empty{}, nil
}
