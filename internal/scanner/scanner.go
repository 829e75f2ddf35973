package scanner

import (
	"context"
	"fmt"
	"time"

	"NewsScanner/internal/domain"
)

// DefaultLimit caps how many links a publisher contributes per run.
const DefaultLimit = 3

// Request carries all parameters required to list a publisher's articles.
type Request struct {
	Day      time.Time
	SiteName string
	BaseURL  string
	Limit    int
	Options  map[string]string
}

// MaxLinks returns the effective per-run cap.
func (r Request) MaxLinks() int {
	if r.Limit <= 0 {
		return DefaultLimit
	}
	return r.Limit
}

// Link is a discovered article, optionally with the title shown on the listing.
type Link struct {
	URL   string
	Title string
}

// Adapter captures one publisher's markup conventions (Guardian, Mail, Metro).
type Adapter interface {
	Name() string
	ListCandidates(ctx context.Context, req Request) ([]Link, error)
	Extract(ctx context.Context, req Request, link Link) (domain.Candidate, error)
}

// Registry keeps a mapping from adapter names to their implementations.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: map[string]Adapter{}}
}

// Register adds or replaces an adapter implementation.
func (r *Registry) Register(adapter Adapter) {
	if r.adapters == nil {
		r.adapters = map[string]Adapter{}
	}
	r.adapters[adapter.Name()] = adapter
}

// Resolve returns an adapter by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Adapter, error) {
	if adapter, ok := r.adapters[name]; ok {
		return adapter, nil
	}
	return nil, fmt.Errorf("adapter %s is not registered", name)
}
