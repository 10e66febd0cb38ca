package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct{ n atomic.Int32 }

func (p *countingPurger) PurgeExpired(ctx context.Context) (int64, error) {
	p.n.Add(1)
	return 0, nil
}

func TestRunJanitor_StopsOnCancel(t *testing.T) {
	p := &countingPurger{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		runJanitor(ctx, p, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return p.n.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
