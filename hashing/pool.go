package hashing

import (
	"fmt"
	"sync"
)

// Outcome is the value delivered on the channel returned by [Pool.Submit].
type Outcome struct {
	Result Result
	Err    error
}

type job struct {
	req Request
	out chan<- Outcome
}

// Pool runs hashing requests on a fixed number of worker goroutines, which
// bounds how many derivations execute at once.
//
//	p, _ := hashing.NewPool(h, runtime.NumCPU())
//	defer p.Close()
//	out := <-p.Submit(hashing.Request{Password: pw})
//
// All methods are safe for concurrent use.
type Pool struct {
	hasher *PasswordHasher
	jobs   chan job

	mu     sync.RWMutex
	closed bool

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool starts workers goroutines that serve requests with h.
// Returns [ErrInvalidOption] if workers < 1 or h is nil.
func NewPool(h *PasswordHasher, workers int) (*Pool, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: pool requires a hasher", ErrInvalidOption)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: pool workers must be ≥ 1, got %d", ErrInvalidOption, workers)
	}
	p := &Pool{
		hasher: h,
		jobs:   make(chan job),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p, nil
}

func (p *Pool) work() {
	defer p.wg.Done()
	for j := range p.jobs {
		res, err := p.hasher.Make(j.req)
		j.out <- Outcome{Result: res, Err: err}
	}
}

// Submit queues req and returns a channel that receives exactly one
// [Outcome].  Submit blocks while every worker is busy.  After [Pool.Close]
// the channel carries [ErrPoolClosed].
func (p *Pool) Submit(req Request) <-chan Outcome {
	out := make(chan Outcome, 1)

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		out <- Outcome{Err: ErrPoolClosed}
		return out
	}
	p.jobs <- job{req: req, out: out}
	return out
}

// Close stops accepting requests and waits for queued work to finish.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
		p.wg.Wait()
	})
}
