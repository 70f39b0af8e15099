package notify

import (
	log "log/slog"
)

// Dispatcher hands requests to the sink on its own goroutine so rendering can
// never stall the sampling loop. A full queue drops the request with a
// warning instead of blocking.
type Dispatcher struct {
	sink Sink
	ch   chan DisplayRequest
	done chan struct{}
}

func NewDispatcher(sink Sink, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 8
	}
	d := &Dispatcher{
		sink: sink,
		ch:   make(chan DisplayRequest, buffer),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for req := range d.ch {
		if err := d.sink.Display(req); err != nil {
			log.Error("display failed", "id", req.ID, "err", err)
		}
	}
}

// Dispatch enqueues a request and returns immediately.
func (d *Dispatcher) Dispatch(req DisplayRequest) {
	select {
	case d.ch <- req:
	default:
		log.Warn("display queue full, dropping", "id", req.ID, "title", req.Title)
	}
}

// DispatchError routes text to the error-display path.
func (d *Dispatcher) DispatchError(text string) {
	d.Dispatch(NewError(text))
}

// Close drains queued requests and waits for the renderer to finish.
func (d *Dispatcher) Close() {
	close(d.ch)
	<-d.done
}
