package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// RecommendationsRSS serves a student's recommendations as an RSS feed.
type RecommendationsRSS struct {
	FeedHostname    string
	FeedAuthorName  string
	FeedAuthorEmail string
	Recommender     command.Recommender
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c RecommendationsRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	studentID, err := studentIDFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse student id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recs, err := c.Recommender.Execute(ctx, command.RecommendRequest{StudentID: studentID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommendations for feed", "student_id", studentID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Recommended Internships",
		Link:        &feeds.Link{Href: c.FeedHostname + r.URL.Path},
		Description: "Internships recommended from your skills and the applications of similar students",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now(),
	}

	for _, rec := range recs {
		id := strconv.FormatInt(rec.ID, 10)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          id,
			IsPermaLink: "false",
			Title:       rec.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/internships/" + id},
			Description: rec.Description,
			Author:      &feeds.Author{Name: rec.CompanyName},
			Created:     rec.PostedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
