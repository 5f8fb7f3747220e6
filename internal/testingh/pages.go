package testingh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	IndexHTML    = "<html><body><h1>Home</h1></body></html>"
	AboutHTML    = "<html><body><h1>About</h1></body></html>"
	ContactHTML  = "<html><body><h1>Contact me</h1></body></html>"
	TeapotHTML   = "<html><body><h1>418 I'm a teapot</h1></body></html>"
	NotFoundHTML = "<html><body><h1>404 Not found</h1></body></html>"
)

// SitePages is the content of the default pages directory.
var SitePages = map[string]string{
	"index.html":      IndexHTML,
	"about.html":      AboutHTML,
	"contact-me.html": ContactHTML,
	"418.html":        TeapotHTML,
	"404.html":        NotFoundHTML,
}

// WriteFiles creates a temporary directory with the given files
// (name relative to the directory -> content) and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}
