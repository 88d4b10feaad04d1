package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"server_url": "https://example.com/resume.json",
		"username": "ada",
		"password": "s3cret",
		"format": "json",
		"timeout_seconds": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/resume.json", cfg.ServerURL)
	assert.Equal(t, "ada", cfg.Username)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvServerURL, "https://example.com/resume")
	t.Setenv(EnvUsername, "ada")
	t.Setenv(EnvPassword, "s3cret")
	t.Setenv(EnvFormat, "text")
	t.Setenv(EnvTimeout, "15")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		ServerURL:      "https://example.com/resume",
		Username:       "ada",
		Password:       "s3cret",
		Format:         "text",
		TimeoutSeconds: 15,
	}, *cfg)
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "RESUME_SERVER_URL=https://example.com/resume\nRESUME_USERNAME=ada\n# comment\nRESUME_PASSWORD=\"pa ss\"\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	cfg, err := FromEnvFile(envFile)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/resume", cfg.ServerURL)
	assert.Equal(t, "ada", cfg.Username)
	assert.Equal(t, "pa ss", cfg.Password)
	assert.Empty(t, os.Getenv(EnvUsername))
}

func TestFromEnvFile_Missing(t *testing.T) {
	_, err := FromEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		ServerURL:      "https://example.com/resume",
		Format:         "json",
		TimeoutSeconds: 30,
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing server", Config{}, "'server_url' is required"},
		{"relative server", Config{ServerURL: "resume.json"}, "'server_url' must be an absolute URL"},
		{"bad format", Config{ServerURL: "https://example.com", Format: "pdf"}, "'format' must be one of [text json]"},
		{"negative timeout", Config{ServerURL: "https://example.com", TimeoutSeconds: -1}, "'timeout_seconds' failed gte=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		ServerURL: "https://flag.example.com",
		Username:  "",
	}
	defaults := Config{
		ServerURL:      "https://file.example.com",
		Username:       "ada",
		Password:       "s3cret",
		Format:         "json",
		TimeoutSeconds: 5,
		Verbose:        true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://flag.example.com", merged.ServerURL) // Not overwritten
	assert.Equal(t, "ada", merged.Username)                      // Filled from defaults
	assert.Equal(t, "s3cret", merged.Password)
	assert.Equal(t, "json", merged.Format)
	assert.Equal(t, 5, merged.TimeoutSeconds)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{ServerURL: "https://example.com", Format: "text"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, *cfg, merged)
}
