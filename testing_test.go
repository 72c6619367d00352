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
	"sync"
	"time"

	"rivaas.dev/preload/route"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// collectSink records the canonical string form of every published event.
type collectSink struct {
	mu     sync.Mutex
	events []string
}

func (s *collectSink) Publish(e Event) {
	s.mu.Lock()
	s.events = append(s.events, e.String())
	s.mu.Unlock()
}

func (s *collectSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

// staticSource serves a fixed top-level route table.
func staticSource(routes ...*route.Route) RouteSource {
	return RouteSourceFunc(func() []*route.Route { return routes })
}
