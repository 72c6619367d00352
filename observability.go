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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this library to OpenTelemetry providers.
const instrumentationName = "rivaas.dev/preload"

// observer records per-fetch telemetry: a preload.loads counter and a
// preload.load.duration histogram (both with route.path and outcome
// attributes), plus one preload.load span per fetch attempt.
//
// Instruments are created only for the providers that were configured; a nil
// observer, or one with no providers, records nothing.
type observer struct {
	loads    metric.Int64Counter
	duration metric.Float64Histogram
	tracer   trace.Tracer
}

func newObserver(mp metric.MeterProvider, tp trace.TracerProvider) (*observer, error) {
	if mp == nil && tp == nil {
		return nil, nil
	}

	o := &observer{}
	if mp != nil {
		meter := mp.Meter(instrumentationName)

		var err error
		o.loads, err = meter.Int64Counter("preload.loads",
			metric.WithDescription("Route child load attempts, by outcome."))
		if err != nil {
			return nil, err
		}
		o.duration, err = meter.Float64Histogram("preload.load.duration",
			metric.WithDescription("Route child load duration."),
			metric.WithUnit("s"))
		if err != nil {
			return nil, err
		}
	}
	if tp != nil {
		o.tracer = tp.Tracer(instrumentationName)
	}
	return o, nil
}

// onLoad begins observing one fetch attempt. It returns a context carrying
// the fetch span, if tracing is configured, and a completion callback that
// must be called exactly once with the fetch outcome.
func (o *observer) onLoad(ctx context.Context, path string) (context.Context, func(error)) {
	if o == nil {
		return ctx, func(error) {}
	}

	begin := time.Now()
	var span trace.Span
	if o.tracer != nil {
		ctx, span = o.tracer.Start(ctx, "preload.load",
			trace.WithAttributes(attribute.String("route.path", path)))
	}

	return ctx, func(err error) {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		if o.loads != nil {
			attrs := metric.WithAttributes(
				attribute.String("route.path", path),
				attribute.String("outcome", outcome),
			)
			o.loads.Add(ctx, 1, attrs)
			o.duration.Record(ctx, time.Since(begin).Seconds(), attrs)
		}
		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}
	}
}
