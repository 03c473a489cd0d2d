package app

import "github.com/jbeshir/internship-recommender/internal/command"

// DefaultContentBasedConfig returns the default config for skill matching.
func DefaultContentBasedConfig() command.ContentBasedConfig {
	return command.ContentBasedConfig{
		SimilarityThreshold: 0.2,
		Limit:               5,
	}
}

// DefaultCollaborativeConfig returns the default config for live collaborative filtering.
func DefaultCollaborativeConfig() command.CollaborativeConfig {
	return command.CollaborativeConfig{
		PeerCount: 3,
		Limit:     5,
	}
}

// DefaultEvaluationCollaborativeConfig returns the config for collaborative
// filtering under evaluation, which returns a deeper list so recall at K=20
// can be measured.
func DefaultEvaluationCollaborativeConfig() command.CollaborativeConfig {
	return command.CollaborativeConfig{
		PeerCount: 3,
		Limit:     20,
	}
}

// DefaultEvaluationConfig returns the default train/test split settings.
func DefaultEvaluationConfig() command.EvaluationConfig {
	return command.EvaluationConfig{
		TestSplitRatio: 0.2,
		Seed:           42,
	}
}
