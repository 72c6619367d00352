// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package preload

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rivaas.dev/preload/route"
)

// Loader fetches the deferred children of lazy routes and splices the result
// back into the route tree.
//
// One Loader should be shared by every pipeline that loads routes (the
// preloader and the navigation path), so that all of them converge on each
// route's write-once cache. Load does not deduplicate concurrent fetches:
// two pipelines racing for the same route may each invoke the route's
// LoadChildren function, but only the first result is cached and both
// callers end up observing it.
type Loader struct {
	logger *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used for load diagnostics.
// Defaults to a no-op logger.
func WithLoaderLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the deferred children of r, returning the routes and the
// scope they live in.
//
// If r was already loaded, the cached config is returned without invoking
// the route's LoadChildren function. Otherwise the function is invoked and
// its result normalized:
//
//   - a route.Module is instantiated in a new child scope parented at
//     parent; the module's routes live in that child scope.
//   - a []*route.Route is attached under parent directly; no new scope.
//
// The attached route table is always a fresh, non-nil slice; the elements
// are the module's own routes. Nested lazy routes inside the result are not
// resolved here; recursing into them is the caller's concern.
//
// On success the result is published to the route's write-once cache. If a
// concurrent load attempt published first, its config is returned and this
// one is discarded. On failure the error is returned as produced, nothing is
// cached, and a later Load starts over.
func (l *Loader) Load(ctx context.Context, parent route.Injector, r *route.Route) (*route.LoadedConfig, error) {
	if r == nil {
		return nil, ErrNilRoute
	}
	if cached := r.Loaded(); cached != nil {
		return cached, nil
	}
	if r.LoadChildren == nil {
		return nil, ErrNotLazy
	}
	if parent == nil {
		return nil, ErrNilInjector
	}

	result, err := l.fetch(ctx, r)
	if err != nil {
		return nil, err
	}

	cfg, err := l.normalize(parent, r, result)
	if err != nil {
		return nil, err
	}

	if !r.StoreLoaded(cfg) {
		// A concurrent pipeline's fetch resolved first. Its write wins;
		// this result is discarded so both pipelines see one config.
		l.logger.Debug("discarding load result, cache already populated",
			zap.String("path", r.Path))
		return r.Loaded(), nil
	}

	l.logger.Debug("route children loaded",
		zap.String("path", r.Path),
		zap.Int("routes", len(cfg.Routes)))
	return cfg, nil
}

// fetch invokes the route's LoadChildren function. A panic in the function
// is returned as an error so that every outcome of a load surfaces through
// the error value; errors the function returns itself pass through as-is.
func (l *Loader) fetch(ctx context.Context, r *route.Route) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("load children of %q panicked: %v", r.Path, rec)
		}
	}()
	return r.LoadChildren(ctx)
}

// normalize turns a LoadChildren result into a LoadedConfig.
func (l *Loader) normalize(parent route.Injector, r *route.Route, result any) (*route.LoadedConfig, error) {
	switch v := result.(type) {
	case route.Module:
		child, err := parent.CreateChild(r.Path)
		if err != nil {
			return nil, err
		}
		routes, err := child.Instantiate(v)
		if err != nil {
			return nil, err
		}
		return &route.LoadedConfig{Routes: copyRoutes(routes), Injector: child}, nil
	case []*route.Route:
		return &route.LoadedConfig{Routes: copyRoutes(v), Injector: parent}, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrInvalidLoadResult, result)
	}
}

// copyRoutes detaches a loaded table from the slice the module was
// configured with. Elements are shared; the slice is not, so mutating the
// module's own table later cannot reach the live tree.
func copyRoutes(routes []*route.Route) []*route.Route {
	out := make([]*route.Route, len(routes))
	copy(out, routes)
	return out
}
