package common

import "context"

// Syncer hands out a chain of WorkerSyncer links, so that concurrently prepared
// batches reach their consumer in the order the links were created.
type Syncer struct {
	lastDone chan struct{}
}

// NewSyncer creates a new Syncer whose first link may proceed immediately.
func NewSyncer() *Syncer {
	first := make(chan struct{}, 1)
	first <- struct{}{}

	return &Syncer{
		lastDone: first,
	}
}

// WorkerSyncer returns the next link of the chain.
func (s *Syncer) WorkerSyncer() *WorkerSyncer {
	prevDone := s.lastDone
	s.lastDone = make(chan struct{}, 1)

	return &WorkerSyncer{
		start: prevDone,
		done:  s.lastDone,
	}
}

type WorkerSyncer struct {
	start chan struct{}
	done  chan struct{}
}

// WaitPrevious blocks until the previous link called Done or ctx is closed.
func (s *WorkerSyncer) WaitPrevious(ctx context.Context) error {
	select {
	case <-s.start:
		return nil
	case <-ctx.Done():
		return &ContextCancelError{}
	}
}

// Done releases the next link. The channel is buffered, so Done never blocks.
func (s *WorkerSyncer) Done() {
	select {
	case s.done <- struct{}{}:
	default:
	}
}
