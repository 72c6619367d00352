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
	"time"

	"github.com/benbjohnson/clock"

	"rivaas.dev/preload/route"
)

// Strategy decides when, or whether, the deferred children of an eligible
// route are fetched ahead of navigation.
//
// The preloader hands Preload an eligible route and a startLoad function
// that performs the fetch, emits lifecycle events, and sweeps the freshly
// loaded subtree. startLoad must be called at most once. Returning without
// calling it means the route is simply not preloaded in this sweep; the
// route stays loadable on demand.
//
// ctx is the sweep's context. Once it is done the caller has lost interest:
// a strategy still waiting should return without starting the load.
//
// startLoad's error reports a failed fetch (or a failure deeper in the
// loaded subtree). A strategy may return it, failing the sweep's aggregate
// result, or swallow it so one bad route cannot fail the sweep. Swallowing
// is safe: nothing was cached, and the next load attempt starts over.
//
// Preload is called from concurrent branches; implementations must be safe
// for concurrent use.
type Strategy interface {
	Preload(ctx context.Context, r *route.Route, startLoad func(context.Context) error) error
}

// StrategyFunc is a function adapter for Strategy.
type StrategyFunc func(ctx context.Context, r *route.Route, startLoad func(context.Context) error) error

func (f StrategyFunc) Preload(ctx context.Context, r *route.Route, startLoad func(context.Context) error) error {
	return f(ctx, r, startLoad)
}

// PreloadAll returns the default strategy: start every eligible route's load
// immediately. A failed load is treated as not having happened, so a single
// bad route never fails the sweep; the next attempt, preloaded or on demand,
// starts over.
func PreloadAll() Strategy { return preloadAll{} }

type preloadAll struct{}

func (preloadAll) Preload(ctx context.Context, _ *route.Route, startLoad func(context.Context) error) error {
	_ = startLoad(ctx)
	return nil
}

// NoPreload returns a strategy that never starts a load. Routes remain
// loadable on demand; a sweep under this strategy completes immediately.
func NoPreload() Strategy { return noPreload{} }

type noPreload struct{}

func (noPreload) Preload(context.Context, *route.Route, func(context.Context) error) error {
	return nil
}

// DelayedStrategy starts each eligible route's load after a fixed delay.
// Spacing loads out keeps a large route tree from saturating the network the
// moment preloading is triggered.
type DelayedStrategy struct {
	delay time.Duration
	clock clock.Clock
}

// DelayedOption configures a DelayedStrategy.
type DelayedOption func(*DelayedStrategy)

// WithClock substitutes the wall clock, letting tests drive the delay
// deterministically with clock.NewMock.
func WithClock(c clock.Clock) DelayedOption {
	return func(s *DelayedStrategy) {
		if c != nil {
			s.clock = c
		}
	}
}

// Delayed returns a strategy that waits delay before starting each load.
// If the sweep is cancelled while waiting, the load is never started.
// Like PreloadAll, a failed load is treated as not having happened.
func Delayed(delay time.Duration, opts ...DelayedOption) *DelayedStrategy {
	s := &DelayedStrategy{delay: delay, clock: clock.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DelayedStrategy) Preload(ctx context.Context, _ *route.Route, startLoad func(context.Context) error) error {
	timer := s.clock.Timer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
	}

	_ = startLoad(ctx)
	return nil
}
