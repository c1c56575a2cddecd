package everyuuid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultReportInterval is the default interval between probe reports.
	DefaultReportInterval = time.Second
)

// MaybeReadProbeOptions tries to read probe options from a given path.
//
// Files ending in `.yaml` or `.yml` are decoded as yaml, everything else as json.
// If the file does not exist, found will be false and no error is returned.
func MaybeReadProbeOptions(path string) (opts ProbeOptions, found bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("everyuuid; cannot open probe options file: %w", err)
		return
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.NewDecoder(f).Decode(&opts); err != nil {
			err = fmt.Errorf("everyuuid; cannot decode probe options yaml: %w", err)
			return
		}
	default:
		if err = json.NewDecoder(f).Decode(&opts); err != nil {
			err = fmt.Errorf("everyuuid; cannot decode probe options json: %w", err)
			return
		}
	}
	found = true
	return
}

// ProbeOptions are the options for a collision probe.
type ProbeOptions struct {
	// Workers is the number of goroutines generating identifiers.
	//
	// If unset, [runtime.GOMAXPROCS] is used.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
	// ReportInterval is the interval between reports passed to [ProbeOptions.OnReport].
	//
	// If unset, a default value of 1 second is used.
	ReportInterval time.Duration `json:"report_interval,omitempty" yaml:"report_interval,omitempty"`
	// Limit stops the probe once this many identifiers have been generated.
	//
	// If unset, the probe runs until its context is cancelled.
	Limit uint64 `json:"limit,omitempty" yaml:"limit,omitempty"`
	// Fast selects the pooled ChaCha8 generator ([RandomIdentifier]) over
	// the crypto/rand backed default ([NewRandom]).
	Fast bool `json:"fast,omitempty" yaml:"fast,omitempty"`
	// Generator overrides the identifier generator entirely.
	Generator func() Identifier `json:"-" yaml:"-"`
	// OnReport is called with a report every [ProbeOptions.ReportInterval],
	// and once more when the probe finishes.
	OnReport func(ProbeReport) `json:"-" yaml:"-"`
}

// WorkersOrDefault returns the worker count or a default.
func (o ProbeOptions) WorkersOrDefault() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ReportIntervalOrDefault returns the report interval or a default.
func (o ProbeOptions) ReportIntervalOrDefault() time.Duration {
	if o.ReportInterval > 0 {
		return o.ReportInterval
	}
	return DefaultReportInterval
}

// GeneratorOrDefault returns the generator or a default.
func (o ProbeOptions) GeneratorOrDefault() func() Identifier {
	if o.Generator != nil {
		return o.Generator
	}
	if o.Fast {
		return RandomIdentifier
	}
	return NewRandom
}
