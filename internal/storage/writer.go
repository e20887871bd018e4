package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrWriterClosed is returned by Flush after Close.
var ErrWriterClosed = errors.New("writer closed")

const (
	writeQueueSize = 64
	writeTimeout   = 5 * time.Second
)

type writeJob struct {
	collection Collection
	payload    []byte
	done       chan struct{} // set for flush barriers only
}

// writer applies queued writes on one goroutine, in enqueue order.
type writer struct {
	kv       KV
	recorder ResultRecorder

	mu     sync.Mutex
	closed bool
	jobs   chan writeJob
	exited chan struct{}
}

func newWriter(kv KV, recorder ResultRecorder) *writer {
	w := &writer{
		kv:       kv,
		recorder: recorder,
		jobs:     make(chan writeJob, writeQueueSize),
		exited:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *writer) run() {
	defer close(w.exited)
	for job := range w.jobs {
		if job.done != nil {
			close(job.done)
			continue
		}
		w.apply(job)
	}
}

func (w *writer) apply(job writeJob) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := w.kv.Put(ctx, Key(job.collection), job.payload)
	w.recorder.PersistResult(string(job.collection), err)
	if err != nil {
		slog.Warn("Dropped collection write", "collection", job.collection, "error", err)
		return
	}
	slog.Debug("Collection written", "collection", job.collection, "bytes", len(job.payload))
}

// enqueue schedules a write. It blocks only while the queue is full.
// Writes after close are dropped.
func (w *writer) enqueue(c Collection, payload []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		slog.Warn("Dropped collection write after close", "collection", c)
		return
	}
	w.jobs <- writeJob{collection: c, payload: payload}
}

// flush waits until every write enqueued before the call has been applied.
func (w *writer) flush(ctx context.Context) error {
	done := make(chan struct{})

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWriterClosed
	}
	w.jobs <- writeJob{done: done}
	w.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close drains pending writes and stops the goroutine.
func (w *writer) close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.exited
}
