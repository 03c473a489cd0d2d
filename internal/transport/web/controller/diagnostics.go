package controller

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// Diagnostics reports whether the dataset can support each recommender.
type Diagnostics struct {
	Command command.Command[command.Empty, domain.HybridValidation]
}

func (c Diagnostics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to validate algorithms", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.ErrorContext(ctx, "unable to write diagnostics to response", "error", err)
	}
}
