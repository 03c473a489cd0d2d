package app

import (
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// Recommenders holds the live recommender for each algorithm.
type Recommenders map[domain.Algorithm]command.Recommender

// ByAlgorithm returns the recommender serving algorithm.
func (r Recommenders) ByAlgorithm(algorithm domain.Algorithm) (command.Recommender, error) {
	recommender, ok := r[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, algorithm)
	}
	return recommender, nil
}

// NewRecommenders builds the instrumented live recommenders over dataset.
func NewRecommenders(dataset datasources.DatasetRepository) Recommenders {
	content := command.NewContentBasedRecommendations(dataset, dataset, dataset, DefaultContentBasedConfig())
	collaborative := command.NewCollaborativeRecommendations(dataset, dataset, dataset, DefaultCollaborativeConfig())

	return Recommenders{
		domain.AlgorithmContent:       command.NewInstrumentedRecommender(domain.AlgorithmContent, content),
		domain.AlgorithmCollaborative: command.NewInstrumentedRecommender(domain.AlgorithmCollaborative, collaborative),
		domain.AlgorithmHybrid: command.NewInstrumentedRecommender(domain.AlgorithmHybrid,
			command.NewHybridRecommendations(content, collaborative)),
	}
}

// NewEvaluator builds the per-algorithm evaluator over dataset. Hybrid is
// evaluated with the live recommenders; collaborative filtering is evaluated
// with the deeper held-out variant.
func NewEvaluator(dataset datasources.DatasetRepository, config command.EvaluationConfig) *command.EvaluateAlgorithm {
	content := command.NewContentBasedRecommendations(dataset, dataset, dataset, DefaultContentBasedConfig())
	collaborative := command.NewCollaborativeRecommendations(dataset, dataset, dataset, DefaultCollaborativeConfig())
	heldOut := command.NewCollaborativeRecommendations(
		dataset, dataset, dataset, DefaultEvaluationCollaborativeConfig())

	return command.NewEvaluateAlgorithm(
		content,
		heldOut,
		command.NewHybridRecommendations(content, collaborative),
		config,
	)
}
