package telemetry

import (
	"context"
	"testing"

	"gift_contribution/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), config.OtelConfig{Enabled: false}, "test", nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Stdout(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), config.OtelConfig{
		Enabled:     true,
		Exporter:    "stdout",
		ServiceName: "gift-contribution-test",
	}, "test", nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_UnknownExporter(t *testing.T) {
	_, err := InitTracer(context.Background(), config.OtelConfig{Enabled: true, Exporter: "zipkin"}, "test", nil)
	assert.Error(t, err)
}
