package everyuuid

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// NewProbe returns a new collision probe.
//
// A probe generates random identifiers independently of the index mapping
// on many goroutines, and counts how many exact duplicates it sees.
func NewProbe(opts ProbeOptions) *Probe {
	return &Probe{
		opts: opts,
		seen: newIdentifierSet(),
	}
}

// Probe counts identifier collisions across concurrent generators.
type Probe struct {
	opts ProbeOptions
	seen *identifierSet

	generated  uint64
	duplicates uint64
	claimed    uint64

	mu            sync.Mutex
	started       time.Time
	lastReportAt  time.Time
	lastGenerated uint64
}

// ProbeReport is a point in time summary of a probe.
type ProbeReport struct {
	Elapsed    time.Duration
	Generated  uint64
	Duplicates uint64
	// Rate is identifiers generated per second since the previous report.
	Rate float64
}

// CoveragePercent returns the generated count as a percentage of 2^122.
func (pr ProbeReport) CoveragePercent() float64 {
	return float64(pr.Generated) * 100 / math.Ldexp(1, IndexBits)
}

// DuplicatePercent returns the duplicate count as a percentage of the generated count.
func (pr ProbeReport) DuplicatePercent() float64 {
	if pr.Generated == 0 {
		return 0
	}
	return float64(pr.Duplicates) * 100 / float64(pr.Generated)
}

// String returns a single line summary of the report.
func (pr ProbeReport) String() string {
	return fmt.Sprintf("time=%ds generated=%d (%g%%) duplicates=%d (%g%%) rate=%.0f/s",
		int64(pr.Elapsed/time.Second),
		pr.Generated,
		pr.CoveragePercent(),
		pr.Duplicates,
		pr.DuplicatePercent(),
		pr.Rate,
	)
}

// Observe records a generated identifier, returning true if it had been seen before.
//
// Observe is safe to call from many goroutines at once.
func (p *Probe) Observe(id Identifier) (duplicate bool) {
	if !p.seen.insert(id) {
		atomic.AddUint64(&p.duplicates, 1)
		duplicate = true
	}
	atomic.AddUint64(&p.generated, 1)
	return
}

// Generated returns the number of identifiers observed so far.
func (p *Probe) Generated() uint64 {
	return atomic.LoadUint64(&p.generated)
}

// Duplicates returns the number of duplicate identifiers observed so far.
func (p *Probe) Duplicates() uint64 {
	return atomic.LoadUint64(&p.duplicates)
}

// Report returns a summary of the probe, with the rate measured
// since the last report passed to [ProbeOptions.OnReport].
func (p *Probe) Report() ProbeReport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reportUnsafe(time.Now())
}

// Run generates identifiers until the context is cancelled or
// [ProbeOptions.Limit] identifiers have been generated.
//
// Cancellation is not treated as an error.
func (p *Probe) Run(ctx context.Context) error {
	p.mu.Lock()
	p.started = time.Now()
	p.lastReportAt = p.started
	p.lastGenerated = p.Generated()
	p.mu.Unlock()

	generate := p.opts.GeneratorOrDefault()
	group, groupCtx := errgroup.WithContext(ctx)
	for x := 0; x < p.opts.WorkersOrDefault(); x++ {
		group.Go(func() error {
			for {
				select {
				case <-groupCtx.Done():
					return nil
				default:
				}
				if !p.claim() {
					return nil
				}
				p.Observe(generate())
			}
		})
	}

	workersDone := make(chan error, 1)
	go func() {
		workersDone <- group.Wait()
	}()

	ticker := time.NewTicker(p.opts.ReportIntervalOrDefault())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.emitReport()
		case err := <-workersDone:
			p.emitReport()
			return err
		}
	}
}

//
// internal methods
//

// claim reserves a slot to generate an identifier, returning false once the limit is reached.
func (p *Probe) claim() bool {
	if p.opts.Limit == 0 {
		return true
	}
	return atomic.AddUint64(&p.claimed, 1) <= p.opts.Limit
}

func (p *Probe) emitReport() {
	p.mu.Lock()
	now := time.Now()
	report := p.reportUnsafe(now)
	p.lastReportAt = now
	p.lastGenerated = report.Generated
	p.mu.Unlock()

	if p.opts.OnReport != nil {
		p.opts.OnReport(report)
	}
}

func (p *Probe) reportUnsafe(now time.Time) ProbeReport {
	report := ProbeReport{
		Generated:  p.Generated(),
		Duplicates: p.Duplicates(),
	}
	if !p.started.IsZero() {
		report.Elapsed = now.Sub(p.started)
	}
	if sinceLast := now.Sub(p.lastReportAt); !p.lastReportAt.IsZero() && sinceLast > 0 {
		report.Rate = float64(report.Generated-p.lastGenerated) / sinceLast.Seconds()
	}
	return report
}
