// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker counts runs and blocks until its context is cancelled.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(w1, w2, w3)
	ws.Run(ctx)

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	ws.Wait()
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// should not panic and Wait must not block
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Wait_ReturnsAfterCancel(t *testing.T) {
	w := &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(w)
	ws.Run(ctx)

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}
