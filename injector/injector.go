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

package injector

import (
	"fmt"

	"go.uber.org/dig"

	"rivaas.dev/preload/route"
)

// digScope is the surface shared by *dig.Container and *dig.Scope. Root and
// child scopes differ only in which of the two backs them.
type digScope interface {
	Provide(constructor any, opts ...dig.ProvideOption) error
	Invoke(function any, opts ...dig.InvokeOption) error
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// Scope is a dig-backed dependency scope implementing route.Injector.
// Providers registered in a scope are visible to that scope and its
// descendants, never to its ancestors.
type Scope struct {
	name   string
	parent *Scope
	dig    digScope
}

// New creates a root Scope backed by a fresh dig container.
//
// Example:
//
//	root := injector.New()
//	root.Provide(config.Load)
//	p := preload.MustNew(src, root)
func New(opts ...dig.Option) *Scope {
	return &Scope{name: "root", dig: dig.New(opts...)}
}

// Name returns the scope's informational name: "root" for a root scope, the
// name passed to CreateChild otherwise.
func (s *Scope) Name() string { return s.name }

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() route.Injector {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// CreateChild derives a new scope parented at s.
func (s *Scope) CreateChild(name string) (route.Injector, error) {
	return &Scope{name: name, parent: s, dig: s.dig.Scope(name)}, nil
}

// Provide registers a constructor in this scope.
func (s *Scope) Provide(constructor any, opts ...dig.ProvideOption) error {
	return s.dig.Provide(constructor, opts...)
}

// Invoke resolves fn's arguments from this scope (and its ancestors) and
// calls it.
func (s *Scope) Invoke(fn any, opts ...dig.InvokeOption) error {
	return s.dig.Invoke(fn, opts...)
}

// Instantiate registers the module's providers into this scope and returns
// the module's route table.
func (s *Scope) Instantiate(m route.Module) ([]*route.Route, error) {
	for _, constructor := range m.Providers() {
		if err := s.dig.Provide(constructor); err != nil {
			return nil, fmt.Errorf("scope %q: %w", s.name, err)
		}
	}
	return m.Routes(), nil
}
