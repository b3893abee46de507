package loader

// Phase identifies a stage of a load operation.
type Phase int

const (
	// PhaseParsing covers reading and parsing the input lines.
	PhaseParsing Phase = iota
	// PhaseBuilding covers assembling the forest from parsed items.
	PhaseBuilding
	// PhasePopulating covers handing root entries to the consumer.
	PhasePopulating
)

// String returns the human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseParsing:
		return "parsing"
	case PhaseBuilding:
		return "building"
	case PhasePopulating:
		return "populating"
	default:
		return "unknown"
	}
}

// Progress is one coarse-grained progress report.
type Progress struct {
	Phase Phase
	Done  int
	Total int
}

// ProgressFunc observes progress reports. Delivery is fire-and-forget:
// the pipeline never blocks on or fails because of an observer, and a
// nil observer is valid.
type ProgressFunc func(Progress)

// tracker throttles progress emission for one phase. Reports are
// emitted roughly every 1% of total (at least every item for small
// totals), and the final done == total report is emitted exactly once.
type tracker struct {
	fn       ProgressFunc
	phase    Phase
	total    int
	interval int
	finished bool
}

func newTracker(fn ProgressFunc, phase Phase, total int) *tracker {
	interval := total / 100
	if interval < 1 {
		interval = 1
	}
	return &tracker{fn: fn, phase: phase, total: total, interval: interval}
}

// step reports done items, subject to throttling.
func (t *tracker) step(done int) {
	if t.fn == nil || t.finished {
		return
	}
	if done >= t.total {
		t.finish()
		return
	}
	if done%t.interval == 0 {
		t.fn(Progress{Phase: t.phase, Done: done, Total: t.total})
	}
}

// finish emits the final done == total report. It is idempotent.
func (t *tracker) finish() {
	if t.fn == nil || t.finished {
		return
	}
	t.finished = true
	t.fn(Progress{Phase: t.phase, Done: t.total, Total: t.total})
}
