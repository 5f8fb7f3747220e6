package config_test

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/config"
)

var configExamplePath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	configExamplePath = filepath.Join(filepath.Dir(currentFile), "..", "..", "configs", "config.example.toml")
}

func TestParseAndValidate(t *testing.T) {
	unsetEnv(t, "PORT")

	cfg, err := config.ParseAndValidate(configExamplePath)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Log.Level)
	assert.Equal(t, ":3000", cfg.Servers.Pages.Addr)
	assert.Equal(t, "localhost:3001", cfg.Servers.Debug.Addr)
	require.Len(t, cfg.Pages.Routes, 5)
	assert.Equal(t, http.StatusOK, cfg.Pages.Routes[0].Status)
	assert.Equal(t, http.StatusTeapot, cfg.Pages.Routes[3].Status)
}

func TestParseAndValidate_NoFile(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := config.ParseAndValidate("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Servers.Pages.Addr)
	assert.Empty(t, cfg.Servers.Debug.Addr)
	assert.Equal(t, config.Default().Pages.Dir, cfg.Pages.Dir)
	assert.Len(t, cfg.Pages.Routes, len(config.Default().Pages.Routes))
}

func TestParseAndValidate_PartialFile(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.ParseAndValidate(writeConfig(t, `
[pages]
dir = "site"
not_found_file = "missing.html"

[[pages.routes]]
path = "/"
file = "home.html"
`))
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Global.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "site", cfg.Pages.Dir)
	assert.Empty(t, cfg.Pages.AssetsDir)
	require.Len(t, cfg.Pages.Routes, 1)
	assert.Equal(t, http.StatusOK, cfg.Pages.Routes[0].Status)
}

func TestParseAndValidate_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		port    string
		content string
	}{
		{
			name:    "unknown env",
			content: "[global]\nenv = \"local\"\n",
		},
		{
			name:    "unknown log level",
			content: "[log]\nlevel = \"trace\"\n",
		},
		{
			name:    "invalid debug addr",
			content: "[servers.debug]\naddr = \"nowhere\"\n",
		},
		{
			name: "route without file",
			content: `
[pages]
dir = "pages"
not_found_file = "404.html"

[[pages.routes]]
path = "/"
`,
		},
		{
			name: "route with invalid status",
			content: `
[pages]
dir = "pages"
not_found_file = "404.html"

[[pages.routes]]
path = "/"
file = "index.html"
status = 1000
`,
		},
		{
			name: "catch-all file differs from not found file",
			content: `
[pages]
dir = "pages"
not_found_file = "404.html"

[[pages.routes]]
path = "*"
file = "missing.html"
`,
		},
		{
			name: "catch-all with ok status",
			content: `
[pages]
dir = "pages"
not_found_file = "404.html"

[[pages.routes]]
path = "*"
file = "404.html"
status = 200
`,
		},
		{
			name:    "not a number port",
			port:    "http",
			content: "",
		},
		{
			name:    "broken toml",
			content: "[global\n",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)

			_, err := config.ParseAndValidate(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=4242\n"), 0o600))

	unsetEnv(t, "PORT")

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "4242", os.Getenv("PORT"))

	cfg, err := config.ParseAndValidate("")
	require.NoError(t, err)
	assert.Equal(t, ":4242", cfg.Servers.Pages.Addr)
}

func TestParseAndValidate_EmptyPort(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.ParseAndValidate("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Servers.Pages.Addr)
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "") // Restores the previous value on cleanup.
	require.NoError(t, os.Unsetenv(key))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))
	return filename
}

func TestParseAndValidate_CatchAllStatusDefault(t *testing.T) {
	unsetEnv(t, "PORT")

	cfg, err := config.ParseAndValidate(writeConfig(t, `
[pages]
dir = "pages"
not_found_file = "404.html"

[[pages.routes]]
path = "/"
file = "index.html"

[[pages.routes]]
path = "*"
file = "404.html"
`))
	require.NoError(t, err)
	require.Len(t, cfg.Pages.Routes, 2)
	assert.Equal(t, http.StatusOK, cfg.Pages.Routes[0].Status)
	assert.Equal(t, http.StatusNotFound, cfg.Pages.Routes[1].Status)
}
