package validation

import (
	"log/slog"

	"github.com/valkit-go/valkit/pkg/config"
)

// Config controls the validation feature via environment variables.
type Config struct {
	// Strict makes the request filter block on warnings and infos too.
	Strict bool `env:"VALIDATION_STRICT" envDefault:"false"`
	// EnableResponseFilter turns on post-handler status enrichment.
	EnableResponseFilter bool `env:"VALIDATION_ENABLE_RESPONSE_FILTER" envDefault:"true"`
}

// Feature bundles the validator registry, both filters, and the host hooks
// into one installable unit.
type Feature struct {
	cfg      Config
	registry *Registry
	opts     []RequestFilterOption
	log      *slog.Logger
}

// FeatureOption configures a Feature.
type FeatureOption func(*Feature)

// WithFeatureConfig overrides the environment-derived configuration.
func WithFeatureConfig(cfg Config) FeatureOption {
	return func(f *Feature) { f.cfg = cfg }
}

// WithFeatureLogger sets the logger shared by both filters.
func WithFeatureLogger(log *slog.Logger) FeatureOption {
	return func(f *Feature) {
		if log != nil {
			f.log = log
		}
	}
}

// WithRequestFilterOptions forwards options (hooks, logger) to the request
// filter built by RequestFilter.
func WithRequestFilterOptions(opts ...RequestFilterOption) FeatureOption {
	return func(f *Feature) { f.opts = append(f.opts, opts...) }
}

// NewFeature loads Config from the environment and returns a ready Feature.
func NewFeature(opts ...FeatureOption) (*Feature, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	f := &Feature{
		cfg:      cfg,
		registry: NewRegistry(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Registry exposes the validator registry for DTO registration.
func (f *Feature) Registry() *Registry {
	return f.registry
}

// RequestFilter builds the pre-handler filter per the feature config.
func (f *Feature) RequestFilter() *RequestFilter {
	opts := append([]RequestFilterOption{WithLogger(f.log)}, f.opts...)
	if f.cfg.Strict {
		return NewStrictRequestFilter(f.registry, opts...)
	}
	return NewRequestFilter(f.registry, opts...)
}

// ResponseFilter builds the post-handler filter, or nil when disabled.
func (f *Feature) ResponseFilter() *ResponseFilter {
	if !f.cfg.EnableResponseFilter {
		return nil
	}
	return NewResponseFilter(f.registry, f.log)
}
