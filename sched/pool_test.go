package sched

import (
	"errors"
	"sync/atomic"
	"testing"
)

func allEligible(n int) Eligible {
	return func(i int) bool { return true }
}

func TestDispatchSerialModeEvaluatesEverythingInline(t *testing.T) {
	p := New(0)
	var concurrent, overlapped int32

	eval := func(i int) (Result, error) {
		if atomic.AddInt32(&concurrent, 1) > 1 {
			atomic.StoreInt32(&overlapped, 1)
		}
		defer atomic.AddInt32(&concurrent, -1)
		return i * 2, nil
	}

	results, err := p.Dispatch(4, allEligible(4), eval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&overlapped) != 0 {
		t.Fatalf("serial mode ran argument evaluations concurrently")
	}
	for i, r := range results {
		if r.(int) != i*2 {
			t.Fatalf("result[%d] = %v, want %d", i, r, i*2)
		}
	}
}

func TestDispatchRespectsMaxWorkers(t *testing.T) {
	p := New(1)
	started := make(chan struct{}, 8)
	release := make(chan struct{})
	var maxActive int32

	eval := func(i int) (Result, error) {
		p.mu.Lock()
		if a := int32(p.active); a > atomic.LoadInt32(&maxActive) {
			atomic.StoreInt32(&maxActive, a)
		}
		p.mu.Unlock()
		started <- struct{}{}
		<-release
		return i, nil
	}

	done := make(chan []Result)
	go func() {
		results, _ := p.Dispatch(3, allEligible(3), eval)
		done <- results
	}()

	<-started
	close(release)
	<-done
	if got := atomic.LoadInt32(&maxActive); got > int32(p.MaxWorkers) {
		t.Fatalf("%d workers active at once, MaxWorkers is %d", got, p.MaxWorkers)
	}
}

func TestDispatchJoinsAllWorkersEvenOnError(t *testing.T) {
	p := New(4)
	var completed int32

	eval := func(i int) (Result, error) {
		defer atomic.AddInt32(&completed, 1)
		if i == 1 {
			return nil, errors.New("boom")
		}
		return i, nil
	}

	_, err := p.Dispatch(4, allEligible(4), eval)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if completed != 4 {
		t.Fatalf("expected all 4 slots to complete despite error, got %d", completed)
	}
}

func TestDispatchSurfacesFirstPositionalError(t *testing.T) {
	p := New(4)
	eval := func(i int) (Result, error) {
		if i == 2 || i == 0 {
			return nil, errors.New("err-at-" + string(rune('0'+i)))
		}
		return i, nil
	}

	_, err := p.Dispatch(4, allEligible(4), eval)
	if err == nil || err.Error() != "err-at-0" {
		t.Fatalf("expected first positional error (index 0), got %v", err)
	}
}

func TestDispatchIneligibleArgumentsAlwaysInline(t *testing.T) {
	p := New(0)
	eligible := func(i int) bool { return i == 1 }

	var sawIndex1Spawn bool
	eval := func(i int) (Result, error) {
		if i == 1 {
			sawIndex1Spawn = true
		}
		return i, nil
	}

	results, err := p.Dispatch(3, eligible, eval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawIndex1Spawn {
		t.Fatalf("expected index 1 to be evaluated")
	}
	if results[0].(int) != 0 || results[2].(int) != 2 {
		t.Fatalf("ineligible args should still be evaluated inline with correct results")
	}
}

func TestDispatchDeterministicAcrossSerialAndParallel(t *testing.T) {
	eval := func(i int) (Result, error) { return i * i, nil }

	serial := New(0)
	sr, _ := serial.Dispatch(6, allEligible(6), eval)

	parallel := New(3)
	pr, _ := parallel.Dispatch(6, allEligible(6), eval)

	for i := range sr {
		if sr[i] != pr[i] {
			t.Fatalf("results diverge at %d: serial=%v parallel=%v", i, sr[i], pr[i])
		}
	}
}
