package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetEnvAsStrings(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "single", value: "a.example.com", want: []string{"a.example.com"}},
		{name: "trims and drops empties", value: " a.example.com, ,b.example.com,", want: []string{"a.example.com", "b.example.com"}},
		{name: "empty", value: "", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_HOSTNAMES", tc.value)
			assert.Equal(t, tc.want, MustGetEnvAsStrings(context.Background(), "TEST_HOSTNAMES"))
		})
	}
}

func TestMustGetEnvAs_Parsing(t *testing.T) {
	ctx := context.Background()
	t.Setenv("TEST_INT", "8080")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")

	assert.Equal(t, 8080, MustGetEnvAsInt(ctx, "TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "TEST_DURATION"))
}

func TestMustGetEnvAs_Panics(t *testing.T) {
	ctx := context.Background()
	t.Setenv("TEST_BAD_INT", "eighty")

	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET_VARIABLE") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TEST_BAD_INT") })
}

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_SET", "memory")

	assert.Equal(t, "memory", GetEnvAsString("TEST_SET", "mysql"))
	assert.Equal(t, "mysql", GetEnvAsString("TEST_DEFINITELY_UNSET_VARIABLE", "mysql"))
}
