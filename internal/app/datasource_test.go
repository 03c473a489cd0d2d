package app

import (
	"context"
	"testing"

	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatasetPath = "../datasources/memory/testdata/dataset.json"

func TestSetupDatasetRepository_Memory(t *testing.T) {
	t.Setenv("MEMORY_DATASET_PATH", testDatasetPath)

	dataset, closeDataset, err := SetupDatasetRepository(context.Background(), DriverMemory)
	require.NoError(t, err)
	defer closeDataset()

	count, err := dataset.CountStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSetupDatasetRepository_UnknownDriver(t *testing.T) {
	_, _, err := SetupDatasetRepository(context.Background(), "sqlite")
	assert.ErrorIs(t, err, datasources.ErrUnknownDriver)
}

func TestNewRecommenders(t *testing.T) {
	t.Setenv("MEMORY_DATASET_PATH", testDatasetPath)
	ctx := context.Background()

	dataset, closeDataset, err := SetupDatasetRepository(ctx, DriverMemory)
	require.NoError(t, err)
	defer closeDataset()

	recommenders := NewRecommenders(dataset)

	cases := []struct {
		algorithm domain.Algorithm
		want      []int64
	}{
		{algorithm: domain.AlgorithmContent, want: []int64{103, 102}},
		{algorithm: domain.AlgorithmCollaborative, want: []int64{103}},
		{algorithm: domain.AlgorithmHybrid, want: []int64{103, 102}},
	}

	for _, tc := range cases {
		t.Run(string(tc.algorithm), func(t *testing.T) {
			recommender, err := recommenders.ByAlgorithm(tc.algorithm)
			require.NoError(t, err)

			recs, err := recommender.Execute(ctx, command.RecommendRequest{StudentID: 1})
			require.NoError(t, err)
			assert.Equal(t, tc.want, domain.RecommendationIDs(recs))
		})
	}

	_, err = recommenders.ByAlgorithm("popularity")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}
