package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Initialize(DefaultMetricsConfig())
		Initialize(MetricsConfig{EnableLatency: false})
	})
	assert.False(t, Config.EnableLatency)
	Config = DefaultMetricsConfig()
}

func TestLabelsTotal(t *testing.T) {
	LabelsTotal.WithLabelValues("flagged", "stateless").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(LabelsTotal.WithLabelValues("flagged", "stateless")))

	families, err := Gatherer().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "trustguard_labels_total")
}
