package loader

import (
	"context"
	"sync"
)

// Outcome is the terminal event of one load request.
type Outcome struct {
	// Generation identifies the load request this outcome belongs to.
	Generation uint64

	// Result is the immutable load result. Nil when Err is set.
	Result *Result

	// Err is ErrNoRoot, a cancellation error, or nil.
	Err error
}

// Service runs load operations on a worker goroutine so a consumer
// driving a foreground loop is never blocked on a large input.
//
// Each Start supersedes any in-flight load: the previous worker's
// context is cancelled and its outcome is dropped rather than
// delivered. Outcomes for the newest generation are handed over once,
// as immutable values, on the Outcomes channel; the worker performs no
// further mutation after handover.
type Service struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	outcomes   chan Outcome
	closed     bool
}

// NewService creates an idle service.
func NewService() *Service {
	return &Service{
		// Capacity one: a stale pending outcome is replaced, never a
		// reason to block the worker.
		outcomes: make(chan Outcome, 1),
	}
}

// Outcomes delivers the outcome of the most recent Start. Consumers
// should receive on their primary line of control and apply the result
// there.
func (s *Service) Outcomes() <-chan Outcome {
	return s.outcomes
}

// Start begins a new load and returns its generation. Any in-flight
// load is cancelled and its outcome will not be delivered.
func (s *Service) Start(ctx context.Context, lines []string, opts Options) uint64 {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	generation := s.generation

	workerCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		result, err := Load(workerCtx, lines, opts)
		s.deliver(Outcome{Generation: generation, Result: result, Err: err})
	}()

	return generation
}

// Close cancels any in-flight load. Outcomes already delivered remain
// readable; no further outcomes are produced.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.closed = true
}

// deliver hands an outcome to the consumer unless a newer load has
// started, in which case it is dropped. A pending undelivered outcome
// is necessarily stale and is displaced.
func (s *Service) deliver(outcome Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || outcome.Generation != s.generation {
		return
	}

	for {
		select {
		case s.outcomes <- outcome:
			return
		default:
			select {
			case <-s.outcomes:
			default:
			}
		}
	}
}
