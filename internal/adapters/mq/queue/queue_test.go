package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/okian/jyotish/internal/domain/chart"
)

func jobFor(index int) Job {
	return Job{
		ID:    uuid.New(),
		Index: index,
		Input: chart.BirthInput{
			BirthDate: "1990-06-15",
			BirthTime: "08:30:00",
			Latitude:  28.6139,
			Longitude: 77.2090,
			Timezone:  "Asia/Kolkata",
		},
	}
}

func TestInMemoryQueue_BasicOperations(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2))
	ctx := context.Background()

	// Test empty queue
	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}

	// Test enqueue
	job1 := jobFor(0)
	if !q.Enqueue(ctx, job1) {
		t.Error("expected enqueue to succeed")
	}

	if l := q.Len(ctx); l != 1 {
		t.Errorf("expected length 1, got %d", l)
	}

	// Test dequeue
	jobChan := q.Dequeue(ctx)
	job := <-jobChan
	if job.ID != job1.ID {
		t.Errorf("expected job %v, got %v", job1.ID, job.ID)
	}

	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}
}

func TestInMemoryQueue_CapacityLimit(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2), WithBufferSize(2))
	ctx := context.Background()

	if !q.Enqueue(ctx, jobFor(0)) {
		t.Error("expected first enqueue to succeed")
	}
	if !q.Enqueue(ctx, jobFor(1)) {
		t.Error("expected second enqueue to succeed")
	}

	// Third enqueue should be rejected
	if q.Enqueue(ctx, jobFor(2)) {
		t.Error("expected enqueue to fail at capacity")
	}
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue()
	ctx := context.Background()

	if q.IsClosed() {
		t.Error("expected queue to start open")
	}

	if err := q.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if !q.IsClosed() {
		t.Error("expected queue to report closed")
	}

	// Closing twice is a no-op
	if err := q.Close(); err != nil {
		t.Errorf("unexpected second close error: %v", err)
	}

	// Enqueue after close is rejected
	if q.Enqueue(ctx, jobFor(0)) {
		t.Error("expected enqueue to fail after close")
	}
}

func TestInMemoryQueue_DequeueAfterClose(t *testing.T) {
	q := NewInMemoryQueue()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !q.Enqueue(ctx, jobFor(i)) {
			t.Fatalf("enqueue %d failed", i)
		}
	}
	if err := q.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Queued jobs drain in order, then the channel closes.
	jobChan := q.Dequeue(ctx)
	for i := 0; i < 3; i++ {
		select {
		case job, ok := <-jobChan:
			if !ok {
				t.Fatalf("channel closed after %d jobs", i)
			}
			if job.Index != i {
				t.Errorf("expected index %d, got %d", i, job.Index)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for job")
		}
	}

	select {
	case _, ok := <-jobChan:
		if ok {
			t.Error("expected channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestInMemoryQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(1000), WithBufferSize(1000))
	ctx := context.Background()

	done := make(chan bool, 10)
	for g := 0; g < 10; g++ {
		go func(g int) {
			for i := 0; i < 50; i++ {
				q.Enqueue(ctx, jobFor(g*50+i))
			}
			done <- true
		}(g)
	}
	for g := 0; g < 10; g++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal(fmt.Sprintf("goroutine %d timed out", g))
		}
	}

	if l := q.Len(ctx); l != 500 {
		t.Errorf("expected 500 queued jobs, got %d", l)
	}
}
