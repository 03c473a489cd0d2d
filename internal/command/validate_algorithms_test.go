package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/internship-recommender/internal/datasources/memory"
	"github.com/jbeshir/internship-recommender/internal/datasources/mocks"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateAlgorithms_Execute(t *testing.T) {
	repo, err := memory.Load("../datasources/memory/testdata/dataset.json")
	require.NoError(t, err)

	result, err := NewValidateAlgorithms(repo).Execute(testContext(), Empty{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ContentBased.UsersWithSkills)
	assert.Equal(t, int64(3), result.ContentBased.InternshipsWithSkills)
	assert.True(t, result.ContentBased.Coverage)

	assert.Equal(t, int64(3), result.CollaborativeFiltering.TotalStudents)
	assert.Equal(t, int64(2), result.CollaborativeFiltering.UsersWithApplications)
	assert.Equal(t, int64(1), result.CollaborativeFiltering.ColdStartUsers)
	assert.InDelta(t, 0.25, result.CollaborativeFiltering.Sparsity, 0.0001)
	assert.InDelta(t, 1.5, result.CollaborativeFiltering.AverageApplicationsPerUser, 0.0001)
	assert.True(t, result.HybridReady)
}

func TestValidateAlgorithms_Execute_Errors(t *testing.T) {
	errDB := errors.New("connection reset")

	cases := []struct {
		name        string
		setup       func(*mocks.MockCoverageCounter)
		errContains string
	}{
		{
			name: "profiles",
			setup: func(c *mocks.MockCoverageCounter) {
				c.EXPECT().CountProfilesWithSkills(mock.Anything).Return(0, errDB)
			},
			errContains: "counting profiles",
		},
		{
			name: "internships",
			setup: func(c *mocks.MockCoverageCounter) {
				c.EXPECT().CountProfilesWithSkills(mock.Anything).Return(1, nil)
				c.EXPECT().CountInternshipsWithSkills(mock.Anything).Return(0, errDB)
			},
			errContains: "counting internships",
		},
		{
			name: "students",
			setup: func(c *mocks.MockCoverageCounter) {
				c.EXPECT().CountProfilesWithSkills(mock.Anything).Return(1, nil)
				c.EXPECT().CountInternshipsWithSkills(mock.Anything).Return(1, nil)
				c.EXPECT().CountStudents(mock.Anything).Return(0, errDB)
			},
			errContains: "counting students",
		},
		{
			name: "application_stats",
			setup: func(c *mocks.MockCoverageCounter) {
				c.EXPECT().CountProfilesWithSkills(mock.Anything).Return(1, nil)
				c.EXPECT().CountInternshipsWithSkills(mock.Anything).Return(1, nil)
				c.EXPECT().CountStudents(mock.Anything).Return(4, nil)
				c.EXPECT().GetApplicationStats(mock.Anything).Return(domain.ApplicationStats{}, errDB)
			},
			errContains: "application stats",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := mocks.NewMockCoverageCounter(t)
			tc.setup(counter)

			_, err := NewValidateAlgorithms(counter).Execute(testContext(), Empty{})
			require.ErrorIs(t, err, errDB)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
