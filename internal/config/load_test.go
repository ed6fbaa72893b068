package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "", cfg.API.BaseURL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CATALOG_SERVER_PORT", "9090")
	t.Setenv("CATALOG_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CATALOG_API_BASE_URL", "api.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "api.example.com", cfg.API.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CATALOG_SERVER_PORT", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("CATALOG_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty falls back to local development endpoint",
			raw:  "",
			want: "http://localhost:8000/api",
		},
		{
			name: "whitespace only falls back to default",
			raw:  "   ",
			want: "http://localhost:8000/api",
		},
		{
			name: "missing scheme gets https prepended",
			raw:  "catalog.example.com",
			want: "https://catalog.example.com/api",
		},
		{
			name: "existing http scheme is preserved",
			raw:  "http://catalog.example.com",
			want: "http://catalog.example.com/api",
		},
		{
			name: "existing https scheme is preserved",
			raw:  "https://catalog.example.com",
			want: "https://catalog.example.com/api",
		},
		{
			name: "trailing slash yields a single separator",
			raw:  "https://catalog.example.com/",
			want: "https://catalog.example.com/api",
		},
		{
			name: "existing api suffix is not duplicated",
			raw:  "https://catalog.example.com/api",
			want: "https://catalog.example.com/api",
		},
		{
			name: "api suffix with trailing slash is normalized",
			raw:  "https://catalog.example.com/api/",
			want: "https://catalog.example.com/api",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveBaseURL(tt.raw))
		})
	}
}

func TestResolveBaseURLIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"catalog.example.com",
		"http://localhost:8000",
		"https://catalog.example.com/api",
	}

	for _, raw := range inputs {
		once := ResolveBaseURL(raw)
		assert.Equal(t, once, ResolveBaseURL(once), "resolving %q twice changed the result", raw)
	}
}
