package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRun_StopsWhenCheckResolves(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, time.Second)
	var calls int32
	err := p.Run(context.Background(), func(context.Context) (bool, error) {
		return atomic.AddInt32(&calls, 1) >= 3, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
	if p.Running() {
		t.Error("poller still marked running")
	}
}

func TestRun_FirstCheckIsImmediate(t *testing.T) {
	t.Parallel()

	p := New(time.Hour, time.Hour)
	start := time.Now()
	err := p.Run(context.Background(), func(context.Context) (bool, error) {
		return true, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("first check waited for the interval")
	}
}

func TestRun_TimesOut(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, 20*time.Millisecond)
	err := p.Run(context.Background(), func(context.Context) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("err = %v, want ErrTimedOut", err)
	}
}

func TestRun_TransientErrorKeepsPolling(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, time.Second)
	boom := errors.New("boom")
	var calls int32
	err := p.Run(context.Background(), func(context.Context) (bool, error) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			return false, boom
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRun_TimeoutCarriesLastRoundError(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, 20*time.Millisecond)
	boom := errors.New("boom")
	err := p.Run(context.Background(), func(context.Context) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("err = %v, want ErrTimedOut", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped round error", err)
	}
}

func TestCancel_StopsRunningLoop(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, time.Minute)
	done := make(chan error, 1)
	p.Start(context.Background(), func(context.Context) (bool, error) {
		return false, nil
	}, func(err error) { done <- err })

	time.Sleep(10 * time.Millisecond)
	p.Cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after Cancel")
	}
}

func TestStart_SupersedesPreviousLoop(t *testing.T) {
	t.Parallel()

	p := New(time.Millisecond, time.Minute)
	first := make(chan error, 1)
	p.Start(context.Background(), func(context.Context) (bool, error) {
		return false, nil
	}, func(err error) { first <- err })

	time.Sleep(10 * time.Millisecond)

	second := make(chan error, 1)
	p.Start(context.Background(), func(context.Context) (bool, error) {
		return true, nil
	}, func(err error) { second <- err })

	select {
	case err := <-first:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("first loop err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("first loop was not cancelled")
	}
	select {
	case err := <-second:
		if err != nil {
			t.Errorf("second loop err = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second loop did not finish")
	}
}
