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

// Package injector implements the route.Injector capability on top of
// go.uber.org/dig.
//
// Each lazily loaded module gets its own child scope, so a module's
// providers are resolvable from the module's routes but invisible to the
// rest of the application. Scope nesting mirrors route nesting: a module
// loaded two levels deep sees its own providers, its parent module's, and
// the root's, in that order of precedence.
//
// The preload core depends only on route.Injector; this package exists so
// the module works end to end without the host writing a container adapter.
package injector
