package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/datasources/memory"
	"github.com/jbeshir/internship-recommender/internal/transport/web/router"
	"github.com/jbeshir/internship-recommender/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Setup builds the components of the recommendation service. The returned
// function releases the data store connection once the components stop.
func Setup(ctx context.Context) ([]Component, func(), error) {
	dataset, closeDataset, err := SetupDatasetRepository(ctx, GetEnvAsString("DATASOURCE_DRIVER", DriverMySQL))
	if err != nil {
		return nil, nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	recommenders := NewRecommenders(dataset)
	validateAlgorithmsCmd := command.NewValidateAlgorithms(dataset)

	feedbackStore := memory.NewFeedbackStore()
	saveFeedbackCmd := command.NewSaveFeedback(feedbackStore)
	summarizeFeedbackCmd := command.NewSummarizeFeedback(feedbackStore)

	rateLimiter := router.NewRateLimiter(
		MustGetEnvAsInt(ctx, "HTTP_RATE_LIMIT_REQUESTS"),
		MustGetEnvAsDuration(ctx, "HTTP_RATE_LIMIT_WINDOW"),
	)

	httpRouter, err := router.MakeRouter(
		recommenders,
		validateAlgorithmsCmd,
		saveFeedbackCmd,
		summarizeFeedbackCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		rateLimiter,
	)
	if err != nil {
		closeDataset()
		return nil, nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	tlsDisabled := MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED")
	srv := &server.Server{
		TLSDisabled: tlsDisabled,
		Router:      httpRouter,
	}
	if tlsDisabled {
		srv.TLSDisabledPort = MustGetEnvAsInt(ctx, "PORT")
	} else {
		srv.AutocertHostnames = MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
	}

	return []Component{srv, rateLimiter}, closeDataset, nil
}
