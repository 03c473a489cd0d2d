package domain

import "time"

// satisfiedRating is the lowest rating counted towards the satisfaction rate.
const satisfiedRating = 4

// FeedbackRecord is a student's rating of a recommended internship.
type FeedbackRecord struct {
	UserID       int64     `json:"user_id"`
	InternshipID int64     `json:"internship_id"`
	Rating       int       `json:"rating"`
	Feedback     string    `json:"feedback"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewFeedbackRecord(userID, internshipID int64, rating int, feedback string, now time.Time) FeedbackRecord {
	return FeedbackRecord{
		UserID:       userID,
		InternshipID: internshipID,
		Rating:       rating,
		Feedback:     feedback,
		Timestamp:    now,
	}
}

type SurveyAnalysis struct {
	TotalFeedback      int         `json:"total_feedback"`
	AverageRating      float64     `json:"average_rating"`
	RatingDistribution map[int]int `json:"rating_distribution"`
	SatisfactionRate   float64     `json:"satisfaction_rate"`
}

// AnalyzeSurveys summarises feedback ratings. No feedback yields the zero value.
func AnalyzeSurveys(records []FeedbackRecord) SurveyAnalysis {
	if len(records) == 0 {
		return SurveyAnalysis{}
	}

	analysis := SurveyAnalysis{
		TotalFeedback:      len(records),
		RatingDistribution: make(map[int]int),
	}

	var ratingSum, satisfied int
	for _, r := range records {
		ratingSum += r.Rating
		analysis.RatingDistribution[r.Rating]++
		if r.Rating >= satisfiedRating {
			satisfied++
		}
	}

	analysis.AverageRating = float64(ratingSum) / float64(len(records))
	analysis.SatisfactionRate = float64(satisfied) / float64(len(records))

	return analysis
}
