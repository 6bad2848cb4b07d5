package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-airboat/pkg/assets"
	"github.com/opd-ai/go-airboat/pkg/config"
	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/render"
	"github.com/opd-ai/go-airboat/pkg/scenery"
)

func newHeadlessSession(t *testing.T) *engine.Session {
	t.Helper()
	doc, err := scenery.ParseSVG(strings.NewReader(`<svg viewBox="0 0 1 1">
  <circle cx="0.5" cy="0.2" data-object="rock" />
  <path d="M 0.1 0.1 L 0.9 0.1 L 0.9 0.9 L 0.1 0.9 Z"/>
</svg>`))
	require.NoError(t, err)
	heights, err := scenery.NewHeightMap(1, 1, []float64{0.2})
	require.NoError(t, err)

	session, err := engine.NewSession(config.DefaultConfig(), &assets.Bundle{Map: doc, Heights: heights}, engine.Options{})
	require.NoError(t, err)
	return session
}

func TestRunHeadless_StopsAfterTicks(t *testing.T) {
	session := newHeadlessSession(t)

	err := runHeadless(context.Background(), session, render.NewNullRenderer(logging.Nop()), 0.001, 20)

	require.NoError(t, err)
	assert.Equal(t, uint64(20), session.Frame().Tick)
	assert.Greater(t, session.Frame().Speed, 0.0)
	assert.False(t, session.Playing())
}

func TestRunHeadless_Cancelled(t *testing.T) {
	session := newHeadlessSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runHeadless(ctx, session, render.NewNullRenderer(logging.Nop()), 0.001, 0)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, session.Playing())
}
