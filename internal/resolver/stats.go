package resolver

import (
	"net/http"

	"go.uber.org/atomic"
)

type Stats struct {
	Pages    int64 `json:"pages"`
	Other    int64 `json:"other"`
	NotFound int64 `json:"notFound"`
	Fallback int64 `json:"fallback"`
}

type stats struct {
	pages    atomic.Int64
	other    atomic.Int64
	notFound atomic.Int64
	fallback atomic.Int64
}

func (s *stats) count(status int) {
	if status == http.StatusOK {
		s.pages.Inc()
		return
	}
	s.other.Inc()
}

// Stats returns the number of responses by kind since start.
// Other counts routes configured with a status other than 200, e.g. the teapot.
func (r *Resolver) Stats() Stats {
	return Stats{
		Pages:    r.stats.pages.Load(),
		Other:    r.stats.other.Load(),
		NotFound: r.stats.notFound.Load(),
		Fallback: r.stats.fallback.Load(),
	}
}
