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

package route

import (
	"context"
	"sync/atomic"
)

// Injector is an opaque dependency scope. The preloading core only ever
// derives child scopes from it and instantiates modules within it; it never
// inspects a scope's contents.
//
// The injector package provides a dig-backed implementation; hosts with their
// own container can implement this interface instead.
type Injector interface {
	// Parent returns the scope this one descends from, or nil at the root.
	Parent() Injector

	// CreateChild returns a new scope parented at this one. The name is
	// informational (typically the path of the route being loaded).
	CreateChild(name string) (Injector, error)

	// Instantiate registers the module's providers into this scope and
	// returns the module's route table. The returned slice is the module's
	// own; callers that attach it to the route tree must copy it first.
	Instantiate(m Module) ([]*Route, error)
}

// Module describes a lazily loaded feature: a table of child routes plus the
// providers those routes' components depend on. Providers are registered into
// a fresh child scope when the module is loaded, so a module's dependencies
// are visible to its own routes but never to its parent.
type Module interface {
	// Routes returns the module's route table.
	Routes() []*Route

	// Providers returns the constructors registered into the module's scope.
	Providers() []any
}

// LoadChildrenFunc fetches the deferred children of a route. The result must
// be a Module (the module is instantiated in a new child scope) or a []*Route
// (attached as-is under the caller's scope); anything else fails the load.
//
// The function is invoked at most once per successful load of a given Route,
// but concurrent independent load attempts (preloading racing an on-demand
// navigation) may each invoke it; only the first result is cached.
type LoadChildrenFunc func(ctx context.Context) (any, error)

// Route is a node in the route configuration tree.
//
// Children and LoadChildren are mutually exclusive ways of declaring a
// route's subtree: Children is static configuration, LoadChildren defers the
// subtree until it is first needed (or preloaded).
//
// A Route value is shared between the preloader and the navigation pipeline.
// The configuration fields are written once, before the tree is handed to
// either; the loaded-state cache is the only field written afterwards, and it
// is write-once (see StoreLoaded).
type Route struct {
	// Path is the path segment this route matches.
	Path string

	// Component is the component rendered for this route, if any. The
	// preloading core only checks it for presence.
	Component any

	// Children are statically configured child routes.
	Children []*Route

	// LoadChildren defers this route's subtree to a fetch at load time.
	LoadChildren LoadChildrenFunc

	// CanLoad names the guards gating this route's lazy subtree. Guards are
	// evaluated by the navigation pipeline; the preloader only checks for
	// presence and never preloads a guarded route, since guards may require
	// request context that does not exist ahead of navigation.
	CanLoad []string

	// loaded caches the result of the first successful load. Written at
	// most once, via compare-and-swap.
	loaded atomic.Pointer[LoadedConfig]
}

// LoadedConfig is the result of successfully loading a route's deferred
// subtree: the expanded child routes and the scope they live in. It is
// immutable after creation.
type LoadedConfig struct {
	// Routes is the loaded child route table. Never nil; it is a copy of
	// the table the module was configured with, so later mutation of the
	// module's own slice cannot reach the live tree. Elements are shared.
	Routes []*Route

	// Injector is the scope the loaded routes resolve their dependencies
	// in: a fresh child scope when the load produced a Module, the loading
	// route's own scope when it produced a plain route table.
	Injector Injector
}

// Loaded returns the cached load result, or nil if this route's subtree has
// not been successfully loaded yet.
func (r *Route) Loaded() *LoadedConfig {
	return r.loaded.Load()
}

// StoreLoaded caches the result of a load attempt. The first write wins:
// StoreLoaded reports false, and leaves the cache untouched, if another load
// attempt already published its result. Callers that lose the race must
// discard cfg and use Loaded instead.
func (r *Route) StoreLoaded(cfg *LoadedConfig) bool {
	return r.loaded.CompareAndSwap(nil, cfg)
}

// LoadedRoutes returns the cached child route table, or nil if the subtree
// has not been loaded.
func (r *Route) LoadedRoutes() []*Route {
	if cfg := r.loaded.Load(); cfg != nil {
		return cfg.Routes
	}
	return nil
}

// LoadedInjector returns the scope the loaded subtree was attached to, or
// nil if the subtree has not been loaded.
func (r *Route) LoadedInjector() Injector {
	if cfg := r.loaded.Load(); cfg != nil {
		return cfg.Injector
	}
	return nil
}

// moduleConfig is the Module returned by NewModule.
type moduleConfig struct {
	routes    []*Route
	providers []any
}

// NewModule builds a Module from a route table and provider constructors.
// Most modules need nothing more; implement Module directly for modules that
// compute their routes or providers.
func NewModule(routes []*Route, providers ...any) Module {
	return &moduleConfig{routes: routes, providers: providers}
}

func (m *moduleConfig) Routes() []*Route { return m.routes }
func (m *moduleConfig) Providers() []any { return m.providers }
