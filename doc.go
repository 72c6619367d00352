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

// Package preload fetches the deferred subtrees of a lazily configured route
// tree ahead of navigation.
//
// A route tree (package route) may defer whole subtrees behind a
// LoadChildren function. Waiting for the first navigation to fetch them adds
// latency exactly when the user is waiting; this package walks the tree in
// the background, decides per route, via a pluggable Strategy, when to fetch,
// performs each fetch exactly once, and splices the resulting child routes
// and their dependency scope back into the live tree.
//
// # Guarantees
//
//   - Idempotent results: each route caches its first successful load;
//     repeated loads return the cache without re-fetching. Concurrent
//     independent attempts (a sweep racing an on-demand navigation) may both
//     fetch, but only one result is cached and both observe it.
//   - Scope nesting: a lazily loaded module's providers live in a child
//     scope of the scope its route was discovered in, for any nesting depth.
//   - Guard exclusion: routes carrying CanLoad guards are never preloaded.
//   - Failure isolation: one route's failed fetch caches nothing, emits no
//     LoadEnd, and never stops sibling branches; the next load attempt for
//     that route starts over.
//
// # Quick Start
//
//	root := injector.New()
//
//	routes := []*route.Route{{
//	    Path: "admin",
//	    LoadChildren: func(ctx context.Context) (any, error) {
//	        return route.NewModule(adminRoutes, newAdminService), nil
//	    },
//	}}
//
//	p := preload.MustNew(
//	    preload.RouteSourceFunc(func() []*route.Route { return routes }),
//	    root,
//	    preload.WithLogger(logger),
//	)
//	if err := p.Preload(ctx); err != nil {
//	    logger.Warn("preload sweep reported failures", zap.Error(err))
//	}
//
// # Strategies
//
// PreloadAll (the default) starts every eligible load immediately and treats
// a failed load as not having happened. NoPreload disables preloading
// without removing the wiring. Delayed spaces loads out on a clock. Custom
// policies (priority tiers, network awareness) implement Strategy or wrap
// StrategyFunc; the contract is one method deciding when, or whether, to
// invoke the supplied startLoad function.
//
// # Observability
//
// Lifecycle events (LoadStart/LoadEnd per fetched route) are published to
// the EventSink configured with WithEventSink. Metrics and traces follow the
// OpenTelemetry API: pass providers via WithMeterProvider and
// WithTracerProvider; without them nothing is recorded.
package preload
