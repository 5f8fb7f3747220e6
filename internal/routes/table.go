package routes

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// CatchAll is the path of the route that stands for every unmatched request.
const CatchAll = "*"

var (
	ErrEmptyPath      = errors.New("empty route path")
	ErrEmptyFile      = errors.New("empty route file")
	ErrDuplicatePath  = errors.New("duplicate route path")
	ErrInvalidStatus  = errors.New("invalid route status")
	ErrCatchAllStatus = errors.New("catch-all route status must be 404")
)

type Route struct {
	Path   string
	File   string
	Status int
}

func (r Route) IsCatchAll() bool {
	return r.Path == CatchAll
}

// Table maps request paths to page files. Lookups are exact: no case
// folding, no trailing slash or query string handling.
// A Table is never modified after New, so it is safe for concurrent use.
type Table struct {
	routes map[string]Route
}

func New(rr ...Route) (*Table, error) {
	t := &Table{routes: make(map[string]Route, len(rr))}

	for _, r := range rr {
		if r.Path == "" {
			return nil, ErrEmptyPath
		}
		if r.File == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyFile, r.Path)
		}
		if r.Status == 0 {
			r.Status = http.StatusOK
			if r.IsCatchAll() {
				r.Status = http.StatusNotFound
			}
		}
		if r.IsCatchAll() && r.Status != http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", ErrCatchAllStatus, r.Status)
		}
		if r.Status < 100 || r.Status > 599 {
			return nil, fmt.Errorf("%w: %q: %d", ErrInvalidStatus, r.Path, r.Status)
		}
		if _, ok := t.routes[r.Path]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, r.Path)
		}
		t.routes[r.Path] = r
	}

	return t, nil
}

func MustNew(rr ...Route) *Table {
	t, err := New(rr...)
	if err != nil {
		panic(err)
	}
	return t
}

// CatchAll returns the catch-all route if the table has one.
func (t *Table) CatchAll() (Route, bool) {
	return t.Lookup(CatchAll)
}

func (t *Table) Lookup(path string) (Route, bool) {
	r, ok := t.routes[path]
	return r, ok
}

func (t *Table) Len() int {
	return len(t.routes)
}

// Routes returns a copy of the table sorted by path.
func (t *Table) Routes() []Route {
	rr := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		rr = append(rr, r)
	}
	sort.Slice(rr, func(i, j int) bool { return rr[i].Path < rr[j].Path })
	return rr
}
