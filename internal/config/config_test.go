package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.HTTP.Port)
	assert.Equal(t, "Main_Blog", cfg.Mongo.Database)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.FrontendOrigin)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
}

func TestLoad_MissingURI(t *testing.T) {
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadScheme(t *testing.T) {
	t.Setenv("MONGO_URI", "postgres://localhost:5432")

	_, err := Load()
	assert.ErrorContains(t, err, "scheme")
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second}, // bare number = seconds
		{`"10s"`, 10 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseDuration("")
	assert.Error(t, err)
	_, err = parseDuration("soon")
	assert.Error(t, err)
}
