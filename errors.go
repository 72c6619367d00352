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

import "errors"

var (
	// ErrNilRoute indicates that a nil route was passed to the loader.
	ErrNilRoute = errors.New("route is nil")

	// ErrNilRouteSource indicates that the preloader was constructed without a route source.
	ErrNilRouteSource = errors.New("route source is nil")

	// ErrNilInjector indicates that a load was attempted without a parent scope.
	ErrNilInjector = errors.New("injector is nil")

	// ErrNilStrategy indicates that the preloader was configured with a nil strategy.
	ErrNilStrategy = errors.New("strategy is nil")

	// ErrNotLazy indicates that a load was attempted on a route with no deferred children.
	ErrNotLazy = errors.New("route has no deferred children")

	// ErrInvalidLoadResult indicates that a LoadChildren function produced
	// something other than a route.Module or a []*route.Route.
	ErrInvalidLoadResult = errors.New("load result must be a route.Module or []*route.Route")
)
