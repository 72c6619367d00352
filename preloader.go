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
	"sync"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rivaas.dev/preload/route"
)

// RouteSource exposes the live top-level route table. The preloader reads it
// at the start of each sweep; it never writes to it. Typically implemented
// by the host router.
type RouteSource interface {
	Routes() []*route.Route
}

// RouteSourceFunc is a function adapter for RouteSource.
type RouteSourceFunc func() []*route.Route

func (f RouteSourceFunc) Routes() []*route.Route {
	return f()
}

// Preloader walks the route tree and fetches the deferred children of every
// eligible lazy route ahead of navigation, splicing the results back into
// the live tree as it goes.
//
// Eligibility: a route is swept only if it has a component or deferred
// children, and a route gated by any CanLoad guard is never preloaded.
// Timing is delegated to the configured Strategy per route.
//
// A Preloader is safe for concurrent use; overlapping sweeps converge on the
// same per-route caches.
type Preloader struct {
	source   RouteSource
	root     route.Injector
	loader   *Loader
	strategy Strategy
	events   EventSink
	logger   *zap.Logger
	obs      *observer

	mp metric.MeterProvider
	tp trace.TracerProvider
}

// New creates a Preloader sweeping the routes of src under the root scope.
// The default strategy is PreloadAll.
//
// Example:
//
//	root := injector.New()
//	p, err := preload.New(router, root,
//	    preload.WithStrategy(preload.Delayed(200*time.Millisecond)),
//	    preload.WithEventSink(sink),
//	    preload.WithLogger(logger),
//	)
func New(src RouteSource, root route.Injector, opts ...Option) (*Preloader, error) {
	if src == nil {
		return nil, ErrNilRouteSource
	}
	if root == nil {
		return nil, ErrNilInjector
	}

	p := &Preloader{
		source:   src,
		root:     root,
		strategy: PreloadAll(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.strategy == nil {
		return nil, ErrNilStrategy
	}
	if p.loader == nil {
		p.loader = NewLoader(WithLoaderLogger(p.logger))
	}

	obs, err := newObserver(p.mp, p.tp)
	if err != nil {
		return nil, err
	}
	p.obs = obs

	return p, nil
}

// MustNew creates a Preloader or panics on error.
func MustNew(src RouteSource, root route.Injector, opts ...Option) *Preloader {
	p, err := New(src, root, opts...)
	if err != nil {
		panic("preload initialization failed: " + err.Error())
	}
	return p
}

// Loader returns the loader this preloader loads through. Hand it to the
// navigation pipeline so both paths share each route's write-once cache.
func (p *Preloader) Loader() *Loader {
	return p.loader
}

// Preload sweeps the current route tree once and returns when every branch
// has settled. The top-level table is snapshotted up front, so routes added
// concurrently by unrelated navigation are picked up by the next sweep, not
// this one; recursion into a freshly loaded subtree always reads the
// just-written value.
//
// Branches are independent: a load failure in one branch never stops the
// others. The aggregate error combines whatever per-branch errors the
// strategy chose to surface; under the default PreloadAll strategy it is
// always nil.
//
// Cancelling ctx stops new loads from being initiated and makes Preload
// return once in-flight branches settle. Fetches already in flight are not
// aborted; their results are cached for later on-demand navigation even
// though this sweep no longer reports them.
func (p *Preloader) Preload(ctx context.Context) error {
	roots := p.source.Routes()
	snapshot := make([]*route.Route, len(roots))
	copy(snapshot, roots)

	return p.sweep(ctx, p.root, snapshot)
}

// sweep fans the routes of one level out into independent branches and
// waits for them all.
func (p *Preloader) sweep(ctx context.Context, scope route.Injector, routes []*route.Route) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, r := range routes {
		if r == nil {
			continue
		}
		wg.Add(1)
		go func(r *route.Route) {
			defer wg.Done()
			if err := p.sweepRoute(ctx, scope, r); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
		}(r)
	}
	wg.Wait()
	return errs
}

// sweepRoute handles a single route of the current level.
func (p *Preloader) sweepRoute(ctx context.Context, scope route.Injector, r *route.Route) error {
	if ctx.Err() != nil {
		// Sweep cancelled: initiate nothing further. Branches already
		// past this point run to completion on their own.
		return nil
	}
	if len(r.CanLoad) > 0 {
		// Guards may need request context that does not exist ahead of
		// navigation. Gated routes are excluded, not failed.
		return nil
	}

	switch {
	case r.LoadChildren != nil:
		if cfg := r.Loaded(); cfg != nil {
			// Fetched by an earlier sweep or the on-demand path. Nothing
			// to load and no events; keep sweeping below it under the
			// scope the load attached.
			return p.sweep(ctx, cfg.Injector, cfg.Routes)
		}
		return p.strategy.Preload(ctx, r, func(ctx context.Context) error {
			return p.loadAndSweep(ctx, scope, r)
		})
	case r.Component != nil:
		// Statically configured subtree: nothing to fetch, no events.
		return p.sweep(ctx, scope, r.Children)
	default:
		// Neither a component nor deferred children: vacuously complete.
		return nil
	}
}

// loadAndSweep is the startLoad pipeline handed to the strategy: fetch the
// route's children, bracket the fetch with lifecycle events, then sweep the
// loaded subtree under its scope.
func (p *Preloader) loadAndSweep(ctx context.Context, scope route.Injector, r *route.Route) error {
	if ctx.Err() != nil {
		// The strategy fired after the sweep was cancelled.
		return nil
	}

	p.publish(Event{Kind: LoadStart, Path: r.Path})
	obsCtx, done := p.obs.onLoad(ctx, r.Path)

	// The fetch itself is shielded from sweep cancellation: cancelling a
	// sweep withholds interest in its results, it does not abort loads, and
	// a completed load stays cached for later on-demand navigation.
	cfg, err := p.loader.Load(context.WithoutCancel(obsCtx), scope, r)
	done(err)
	if err != nil {
		p.logger.Warn("preload failed",
			zap.String("path", r.Path),
			zap.Error(err))
		return err
	}

	p.publish(Event{Kind: LoadEnd, Path: r.Path})
	return p.sweep(ctx, cfg.Injector, cfg.Routes)
}

func (p *Preloader) publish(e Event) {
	if p.events != nil {
		p.events.Publish(e)
	}
}
