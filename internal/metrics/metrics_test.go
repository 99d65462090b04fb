package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/result"
)

func sampleRun() (*result.Result, []doctor.Outcome, doctor.Stats) {
	root := doctor.NewRoot()
	cores := result.Pass("Checking core count", "")
	disk := result.Fail("Checking free space on /", "")
	root.AddChild(cores)
	root.AddChild(disk)
	root.Rollup()
	outcomes := []doctor.Outcome{
		{Check: "core_count", Data: "sysconf", Result: cores},
		{Check: "percent_free:/", Data: "mounts", Result: disk},
	}
	return root, outcomes, doctor.Stats{Pairs: 3, Results: 2, Evaluations: 2, Disabled: 1}
}

func TestExporter_Record(t *testing.T) {
	e := New()
	root, outcomes, stats := sampleRun()
	e.Record(root, outcomes, stats, 1500*time.Millisecond)

	assert.InDelta(t, 0, testutil.ToFloat64(e.checkIssue.WithLabelValues("core_count", "sysconf")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(e.checkIssue.WithLabelValues("percent_free:/", "mounts")), 0)
	assert.InDelta(t, float64(result.PriorityError), testutil.ToFloat64(e.overallPriority), 0)
	assert.InDelta(t, float64(result.IssueYes), testutil.ToFloat64(e.overallIssue), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(e.runStats.WithLabelValues("pairs")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(e.runStats.WithLabelValues("disabled")), 0)
	assert.InDelta(t, 1.5, testutil.ToFloat64(e.duration), 0.0001)
	assert.Equal(t, 2, testutil.CollectAndCount(e.checkIssue))
}

func TestExporter_RepeatedCheckKeepsWorst(t *testing.T) {
	e := New()
	root := doctor.NewRoot()
	lenient := result.Pass("Checking free space on /", "")
	strict := result.Fail("Checking free space on /", "")
	root.AddChild(lenient)
	root.AddChild(strict)
	root.Rollup()

	// The failing entry comes first so a later pass cannot hide it.
	e.Record(root, []doctor.Outcome{
		{Check: "percent_free:/", Data: "mounts", Result: strict},
		{Check: "percent_free:/", Data: "mounts", Result: lenient},
	}, doctor.Stats{}, time.Second)

	assert.Equal(t, 1, testutil.CollectAndCount(e.checkIssue))
	assert.InDelta(t, float64(result.IssueYes), testutil.ToFloat64(e.checkIssue.WithLabelValues("percent_free:/", "mounts")), 0)
	assert.InDelta(t, float64(result.PriorityError), testutil.ToFloat64(e.checkPriority.WithLabelValues("percent_free:/", "mounts")), 0)
}

func TestExporter_WriteTextfile(t *testing.T) {
	e := New()
	root, outcomes, stats := sampleRun()
	e.Record(root, outcomes, stats, time.Second)

	path := filepath.Join(t.TempDir(), "sysdoc.prom")
	require.NoError(t, e.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "# TYPE sysdoc_overall_issue gauge")
	assert.Contains(t, out, `sysdoc_check_issue{check="percent_free:/",data="mounts"} 2`)
	assert.True(t, strings.Contains(out, "sysdoc_last_run_timestamp_seconds"))
}

func TestExporter_WriteTextfileMissingDir(t *testing.T) {
	e := New()
	err := e.WriteTextfile(filepath.Join(t.TempDir(), "missing", "sysdoc.prom"))
	assert.Error(t, err)
}
