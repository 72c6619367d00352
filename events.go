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

import "fmt"

// EventKind categorizes lifecycle events.
type EventKind string

const (
	// LoadStart marks the beginning of a fetch for a route's deferred
	// children. Emitted once per actual fetch attempt; a cached result
	// produces no events.
	LoadStart EventKind = "LoadStart"

	// LoadEnd marks a fetch resolving successfully. A failed fetch emits no
	// LoadEnd, so a lone LoadStart for a path means the attempt failed (or
	// is still in flight).
	LoadEnd EventKind = "LoadEnd"
)

// Event is a lifecycle event for one route's load. Events are value objects:
// produced, published, and not retained.
//
// For a route whose subtree is fetched, consumers observe LoadStart before
// any event from routes discovered through it, and LoadEnd before the
// LoadStart of any such descendant. Events from sibling branches interleave
// arbitrarily.
type Event struct {
	Kind EventKind
	Path string
}

// String returns the canonical display form, e.g. "LoadStart(path: admin)".
func (e Event) String() string {
	return fmt.Sprintf("%s(path: %s)", e.Kind, e.Path)
}

// EventSink receives lifecycle events from the preloader. The preloader
// publishes into the sink but does not own it; implementations may forward
// to the host router's event stream, log, emit metrics, or ignore events.
//
// Publish is called from multiple branches concurrently, so implementations
// must be safe for concurrent use.
//
// Example with logging:
//
//	sink := preload.EventSinkFunc(func(e preload.Event) {
//	    logger.Debug("preload event", zap.String("kind", string(e.Kind)), zap.String("path", e.Path))
//	})
//	p := preload.MustNew(src, root, preload.WithEventSink(sink))
type EventSink interface {
	Publish(Event)
}

// EventSinkFunc is a function adapter for EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) Publish(e Event) {
	f(e)
}
