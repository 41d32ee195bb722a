package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"

	"github.com/benz9527/xset/lib/tree"
)

func TestConsoleMetricsExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := NewConsoleMetricsExporter(
		time.Hour,
		time.Second,
		stdoutmetric.WithWriter(buf),
	)
	require.NoError(t, err)

	set := tree.NewOrderedRBSet[int](tree.WithRBSetStats[int]("console"))
	for i := 0; i < 100; i++ {
		set.Insert(i)
	}
	set.Erase(50)

	// Shutdown exports the last collection.
	require.NoError(t, shutdown(context.Background()))
	require.Contains(t, buf.String(), "xset.rbset.size")
	require.Contains(t, buf.String(), "xset.rbset.insert.count")
	require.Contains(t, buf.String(), tree.RBSetStatsName+"/console")
}

func TestPrometheusMetricsExporter(t *testing.T) {
	reg := promclient.NewRegistry()
	shutdown, err := NewPrometheusMetricsExporter(prometheus.WithRegisterer(reg))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, shutdown(context.Background()))
	}()

	require.NoError(t, InitAppStats("prometheus"))
	require.NoError(t, InitAppStats("ignored"))

	set := tree.NewOrderedRBSet[int](tree.WithRBSetStats[int]("prometheus"))
	for i := 0; i < 100; i++ {
		set.Insert(i)
	}
	for i := 0; i < 10; i++ {
		set.Erase(i)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	names := lo.Map(families, func(mf *dto.MetricFamily, _ int) string {
		return mf.GetName()
	})
	require.Contains(t, names, "xset_rbset_insert_count_total")
	require.Contains(t, names, "xset_rbset_erase_count_total")
	require.Contains(t, names, "xset_rbset_rotation_count_total")
	require.Contains(t, names, "xset_rbset_size")
	require.Contains(t, names, "xset_app_goroutines")
	require.Contains(t, names, "xset_app_processes")
	require.True(t, lo.ContainsBy(names, func(name string) bool {
		return strings.HasPrefix(name, "process_runtime_go_") || strings.HasPrefix(name, "runtime_")
	}))
}
