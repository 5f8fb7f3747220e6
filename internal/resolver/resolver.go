package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/routes"
)

const (
	ContentType = "text/html; charset=UTF-8"

	// FallbackBody is sent when even the not-found page cannot be read.
	FallbackBody = "404 page not found"
)

// ErrCatchAllFile means the table's catch-all route names a page other than
// the not-found file.
var ErrCatchAllFile = errors.New("catch-all route file differs from not found file")

type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type Resolver struct {
	lg           *zap.Logger
	pages        fs.FS
	table        *routes.Table
	notFoundFile string

	stats stats
}

func New(opts Options) (*Resolver, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	if ca, ok := opts.table.CatchAll(); ok && ca.File != opts.notFoundFile {
		return nil, fmt.Errorf("%w: %q != %q", ErrCatchAllFile, ca.File, opts.notFoundFile)
	}

	return &Resolver{
		lg:           opts.logger,
		pages:        opts.pages,
		table:        opts.table,
		notFoundFile: opts.notFoundFile,
	}, nil
}

// Resolve never fails: a missing route or an unreadable page turns into
// the not-found page, an unreadable not-found page into FallbackBody.
func (r *Resolver) Resolve(path string) Response {
	route, ok := r.table.Lookup(path)
	if !ok || route.IsCatchAll() {
		return r.notFound(path)
	}

	body, err := fs.ReadFile(r.pages, route.File)
	if err != nil {
		r.lg.Warn("cannot read page",
			zap.String("path", path),
			zap.String("file", route.File),
			zap.Error(err),
		)
		return r.notFound(path)
	}

	r.stats.count(route.Status)
	return Response{
		Status:      route.Status,
		ContentType: ContentType,
		Body:        body,
	}
}

func (r *Resolver) notFound(path string) Response {
	body, err := fs.ReadFile(r.pages, r.notFoundFile)
	if err != nil {
		r.lg.Warn("cannot read not found page",
			zap.String("path", path),
			zap.String("file", r.notFoundFile),
			zap.Error(err),
		)
		r.stats.fallback.Inc()
		return Response{
			Status:      http.StatusNotFound,
			ContentType: ContentType,
			Body:        []byte(FallbackBody),
		}
	}

	r.stats.notFound.Inc()
	return Response{
		Status:      http.StatusNotFound,
		ContentType: ContentType,
		Body:        body,
	}
}

func (r *Resolver) Routes() []routes.Route {
	return r.table.Routes()
}

// FileSize returns the size of the page file or -1 if it cannot be stat'ed.
func (r *Resolver) FileSize(file string) int64 {
	fi, err := fs.Stat(r.pages, file)
	if err != nil || fi.IsDir() {
		return -1
	}
	return fi.Size()
}

func (r *Resolver) NotFoundFile() string {
	return r.notFoundFile
}
