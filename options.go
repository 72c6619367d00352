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
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures a Preloader.
type Option func(*Preloader)

// WithStrategy sets the preloading strategy. Default: PreloadAll.
//
// Example:
//
//	p := preload.MustNew(src, root, preload.WithStrategy(preload.NoPreload()))
func WithStrategy(s Strategy) Option {
	return func(p *Preloader) {
		p.strategy = s
	}
}

// WithEventSink sets the sink lifecycle events are published to, typically
// the host router's event stream. If not set, events are dropped; the
// preloader behaves identically either way.
func WithEventSink(sink EventSink) Option {
	return func(p *Preloader) {
		p.events = sink
	}
}

// WithLogger sets the logger for sweep diagnostics (per-load debug lines,
// per-route failure warnings). Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Preloader) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLoader makes the preloader load through an existing Loader instead of
// creating its own. Use this when the navigation pipeline already owns a
// Loader, so both paths share each route's write-once cache.
func WithLoader(l *Loader) Option {
	return func(p *Preloader) {
		p.loader = l
	}
}

// WithMeterProvider enables load metrics (preload.loads counter,
// preload.load.duration histogram) on the given provider. If not set, no
// metrics are recorded.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Preloader) {
		p.mp = mp
	}
}

// WithTracerProvider enables a preload.load span per fetch attempt on the
// given provider. If not set, no spans are created.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Preloader) {
		p.tp = tp
	}
}
