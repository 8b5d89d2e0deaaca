package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.Queries.WithLabelValues("bounded").Inc()
	m.Solutions.WithLabelValues("membero").Add(3)
	m.Suspension.Add(7)
	m.QueryLatency.WithLabelValues("membero").Observe(1200)

	n, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Suspension))

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE kanren_queries_total counter")
	assert.Contains(t, out, `kanren_queries_total{mode="bounded"} 1`)
	assert.Contains(t, out, "kanren_suspensions_forced_total 7")
	assert.Contains(t, out, "# TYPE kanren_query_latency_ns summary")
	assert.Contains(t, out, `kanren_query_latency_ns_count{query="membero"} 1`)
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().WriteText(&buf))
	// vectors without children are not exported
	assert.NotContains(t, buf.String(), "kanren_queries_total")
	assert.Contains(t, buf.String(), "kanren_suspensions_forced_total 0")
}
