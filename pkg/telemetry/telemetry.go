// Package telemetry records simulation metrics through OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/opd-ai/go-airboat/pkg/telemetry"

// Meter returns the package meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder holds the simulation instruments.
type Recorder struct {
	ticks      metric.Int64Counter
	resets     metric.Int64Counter
	placements metric.Int64Counter
	speed      metric.Float64Histogram
	throttle   metric.Float64Histogram
}

// NewRecorder creates the instruments on m. A nil m uses Meter().
func NewRecorder(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = Meter()
	}

	r := &Recorder{}
	var err error
	if r.ticks, err = m.Int64Counter(
		"airboat.ticks",
		metric.WithDescription("Simulation ticks executed"),
	); err != nil {
		return nil, err
	}
	if r.resets, err = m.Int64Counter(
		"airboat.resets",
		metric.WithDescription("Vehicle resets"),
	); err != nil {
		return nil, err
	}
	if r.placements, err = m.Int64Counter(
		"airboat.scenery.placements",
		metric.WithDescription("Decoration instances placed, by type"),
	); err != nil {
		return nil, err
	}
	if r.speed, err = m.Float64Histogram(
		"airboat.speed",
		metric.WithDescription("Vehicle speed sampled each tick"),
		metric.WithUnit("m/s"),
	); err != nil {
		return nil, err
	}
	if r.throttle, err = m.Float64Histogram(
		"airboat.throttle",
		metric.WithDescription("Throttle axis sampled each tick"),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RecordTick counts one tick and samples speed and throttle.
func (r *Recorder) RecordTick(ctx context.Context, speed, throttle float64) {
	if r == nil {
		return
	}
	r.ticks.Add(ctx, 1)
	r.speed.Record(ctx, speed)
	r.throttle.Record(ctx, throttle)
}

// RecordReset counts a vehicle reset.
func (r *Recorder) RecordReset(ctx context.Context) {
	if r == nil {
		return
	}
	r.resets.Add(ctx, 1)
}

// RecordPlacements counts placed decorations of one type.
func (r *Recorder) RecordPlacements(ctx context.Context, typ string, count int) {
	if r == nil || count == 0 {
		return
	}
	r.placements.Add(ctx, int64(count), metric.WithAttributes(attribute.String("type", typ)))
}
