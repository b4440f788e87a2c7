package hashing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-pbkdf2-hasher/hashing"
)

func TestNewPool_InvalidArgs(t *testing.T) {
	h := newTestHasher(t)
	if _, err := hashing.NewPool(h, 0); !errors.Is(err, hashing.ErrInvalidOption) {
		t.Errorf("workers=0: expected ErrInvalidOption, got %v", err)
	}
	if _, err := hashing.NewPool(nil, 1); !errors.Is(err, hashing.ErrInvalidOption) {
		t.Errorf("nil hasher: expected ErrInvalidOption, got %v", err)
	}
}

func TestPool_Submit(t *testing.T) {
	p, err := hashing.NewPool(newTestHasher(t), 4)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	const n = 20
	outs := make([]<-chan hashing.Outcome, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			outs[i] = p.Submit(hashing.Request{Password: "pw"})
		}()
	}
	wg.Wait()

	for i, ch := range outs {
		o := <-ch
		if o.Err != nil {
			t.Fatalf("job %d: %v", i, o.Err)
		}
		if o.Result.Password != "pw" || o.Result.Hash == "" {
			t.Errorf("job %d: unexpected result %+v", i, o.Result)
		}
	}
}

func TestPool_PropagatesErrors(t *testing.T) {
	p, _ := hashing.NewPool(newTestHasher(t), 1)
	defer p.Close()

	o := <-p.Submit(hashing.Request{Password: "pw", Salt: "%%%"})
	if !errors.Is(o.Err, hashing.ErrInvalidSalt) {
		t.Errorf("expected ErrInvalidSalt, got %v", o.Err)
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p, _ := hashing.NewPool(newTestHasher(t), 2)
	p.Close()
	p.Close() // idempotent

	o := <-p.Submit(hashing.Request{})
	if !errors.Is(o.Err, hashing.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", o.Err)
	}
}
