package everyuuid

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func Test_ProbeOptions_defaults(t *testing.T) {
	var opts ProbeOptions
	assert_equal(t, runtime.GOMAXPROCS(0), opts.WorkersOrDefault())
	assert_equal(t, DefaultReportInterval, opts.ReportIntervalOrDefault())
	assert_notnil(t, opts.GeneratorOrDefault())

	opts = ProbeOptions{Workers: 3, ReportInterval: 5 * time.Second}
	assert_equal(t, 3, opts.WorkersOrDefault())
	assert_equal(t, 5*time.Second, opts.ReportIntervalOrDefault())
}

func Test_ProbeOptions_GeneratorOrDefault(t *testing.T) {
	fixed := NewRandom()
	opts := ProbeOptions{Generator: func() Identifier { return fixed }}
	assert_equal(t, fixed, opts.GeneratorOrDefault()())

	for _, opts := range []ProbeOptions{{}, {Fast: true}} {
		id := opts.GeneratorOrDefault()()
		assert_equal(t, 4, id.Version())
		assert_equal(t, 2, id.Variant())
	}
}

func Test_MaybeReadProbeOptions_json(t *testing.T) {
	tempPath, done := tempDir()
	t.Cleanup(done)

	path := filepath.Join(tempPath, "probe.json")
	err := os.WriteFile(path, []byte(`{"workers":5,"report_interval":2000000000,"limit":1024,"fast":true}`), 0644)
	assert_noerror(t, err)

	opts, found, err := MaybeReadProbeOptions(path)
	assert_noerror(t, err)
	assert_equal(t, true, found)
	assert_equal(t, 5, opts.Workers)
	assert_equal(t, 2*time.Second, opts.ReportInterval)
	assert_equal(t, 1024, opts.Limit)
	assert_equal(t, true, opts.Fast)
}

func Test_MaybeReadProbeOptions_yaml(t *testing.T) {
	tempPath, done := tempDir()
	t.Cleanup(done)

	path := filepath.Join(tempPath, "probe.yaml")
	err := os.WriteFile(path, []byte("workers: 7\nreport_interval: 250ms\nlimit: 99\n"), 0644)
	assert_noerror(t, err)

	opts, found, err := MaybeReadProbeOptions(path)
	assert_noerror(t, err)
	assert_equal(t, true, found)
	assert_equal(t, 7, opts.Workers)
	assert_equal(t, 250*time.Millisecond, opts.ReportInterval)
	assert_equal(t, 99, opts.Limit)
	assert_equal(t, false, opts.Fast)
}

func Test_MaybeReadProbeOptions_notFound(t *testing.T) {
	tempPath, done := tempDir()
	t.Cleanup(done)

	opts, found, err := MaybeReadProbeOptions(filepath.Join(tempPath, "missing.json"))
	assert_noerror(t, err)
	assert_equal(t, false, found)
	assert_equal(t, 0, opts.Workers)
	assert_equal(t, 0, opts.Limit)
}

func Test_MaybeReadProbeOptions_invalid(t *testing.T) {
	tempPath, done := tempDir()
	t.Cleanup(done)

	path := filepath.Join(tempPath, "probe.json")
	err := os.WriteFile(path, []byte(`{"workers":`), 0644)
	assert_noerror(t, err)

	_, found, err := MaybeReadProbeOptions(path)
	assert_notnil(t, err)
	assert_equal(t, false, found)
}
