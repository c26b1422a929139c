// Package stompio incrementally decodes a STOMP-like text framing
// protocol from an arbitrarily chunked byte stream. Frames are
// requested ahead of data (pipelining), serviced strictly in order, and
// delivered through callbacks once their headers are parsed; bodies
// stream to the consumer pull-wise as bytes arrive.
package stompio

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/googollee/go-stomp.io/logger"
)

type request struct {
	onReady func(*Frame)
	onError func(error)
}

type delivery struct {
	frame *Frame
	err   error
	req   request
}

// Stream turns fed bytes into decoded frames.
//
// A Stream is single-context: every method, and every callback it
// invokes, runs on the goroutine that feeds it. It never blocks and
// holds no locks.
type Stream struct {
	src readBuffer

	current    *Frame
	currentReq request
	pending    []request

	// driving guards the step loop against re-entry; delivering keeps
	// callback flushing in the outermost drive pass only.
	driving    bool
	delivering bool
	deliveries []delivery

	done    bool
	doneErr error

	log logr.Logger
}

// NewStream returns an empty stream. Feed it with Write/ReadFrom and
// close it with End or Fail.
func NewStream() *Stream {
	return &Stream{
		log: logger.GetLogger("stream"),
	}
}

// RequestFrame registers a one-shot frame request. onReady fires once
// the frame's headers are decoded; onError fires if the stream fails or
// ends before this request begins decoding. Requests are serviced in
// the order they were made.
func (s *Stream) RequestFrame(onReady func(*Frame), onError func(error)) {
	req := request{onReady: onReady, onError: onError}
	if s.done {
		s.deliveries = append(s.deliveries, delivery{err: s.doneErr, req: req})
		s.pump()
		return
	}
	if s.current != nil {
		s.pending = append(s.pending, req)
		return
	}
	s.promote(req)
	s.pump()
}

// RequestFrames keeps a request outstanding: after every delivered
// frame the next request is issued before onReady runs, so back-to-back
// frames in one chunk deliver without further notifications.
func (s *Stream) RequestFrames(onReady func(*Frame), onError func(error)) {
	var ready func(*Frame)
	ready = func(f *Frame) {
		s.RequestFrame(ready, onError)
		onReady(f)
	}
	s.RequestFrame(ready, onError)
}

// Write feeds a chunk of transport bytes and drives parsing. The chunk
// is copied; the caller may reuse p. Implements io.Writer so a
// transport loop can io.Copy into the stream.
func (s *Stream) Write(p []byte) (int, error) {
	if s.src.ended || s.done {
		return 0, io.ErrClosedPipe
	}
	s.src.feed(p)
	s.pump()
	return len(p), nil
}

// ReadFrom feeds the stream from r until it is exhausted, then ends the
// stream. A read error fails the stream and is returned.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if _, werr := s.Write(buf[:n]); werr != nil {
				return total, werr
			}
		}
		if err == io.EOF {
			s.End()
			return total, nil
		}
		if err != nil {
			s.Fail(err)
			return total, err
		}
	}
}

// End signals that no more bytes will ever arrive. A frame caught
// mid-decode fails with ErrUnexpectedEnd; every other outstanding
// request gets ErrNoFrame.
func (s *Stream) End() {
	if s.src.ended || s.done {
		return
	}
	s.src.ended = true
	s.pump()
	if s.done {
		return
	}
	if s.current != nil && s.current.inProgress {
		s.log.V(1).Info("source ended mid-frame", "command", s.current.Command)
		s.fail(ErrUnexpectedEnd)
		return
	}

	s.done = true
	s.doneErr = ErrNoFrame
	if s.current != nil {
		s.deliveries = append(s.deliveries, delivery{err: ErrNoFrame, req: s.currentReq})
		s.current = nil
	}
	s.flushPending()
	s.pump()
}

// Fail aborts the stream with a transport error.
func (s *Stream) Fail(err error) {
	if s.done {
		return
	}
	s.src.ended = true
	s.log.V(1).Info("transport failure", "err", err)
	s.fail(err)
}

func (s *Stream) promote(req request) {
	s.current = newFrame(s)
	s.currentReq = req
}

// finishCurrent retires the completed frame and promotes the next
// queued request, if any.
func (s *Stream) finishCurrent() {
	s.current = nil
	if len(s.pending) > 0 {
		req := s.pending[0]
		s.pending = s.pending[1:]
		s.promote(req)
	}
}

// fail tears the stream down: the in-flight frame gets err (through its
// error callback before headers were delivered, through its body
// after), queued requests get ErrNoFrame, and later requests get err.
func (s *Stream) fail(err error) {
	s.done = true
	s.doneErr = err
	if s.current != nil {
		if s.current.delivered {
			s.current.body.fail(err)
		} else {
			s.deliveries = append(s.deliveries, delivery{err: err, req: s.currentReq})
		}
		s.current = nil
	}
	s.flushPending()
	s.pump()
}

func (s *Stream) flushPending() {
	for _, req := range s.pending {
		s.deliveries = append(s.deliveries, delivery{err: ErrNoFrame, req: req})
	}
	s.pending = nil
}

// pump is the drive loop. The step loop runs under the driving guard;
// ready and error callbacks are flushed only after it suspends, and
// only by the outermost pass, with parsing resumed between callbacks.
// A pump issued while one is already driving returns immediately.
func (s *Stream) pump() {
	if s.driving {
		return
	}
	s.driving = true
	s.runSteps()
	s.driving = false

	if s.delivering {
		return
	}
	s.delivering = true
	for len(s.deliveries) > 0 {
		d := s.deliveries[0]
		s.deliveries = s.deliveries[1:]
		if d.err != nil {
			if d.req.onError != nil {
				d.req.onError(d.err)
			}
		} else if d.req.onReady != nil {
			d.req.onReady(d.frame)
		}

		s.driving = true
		s.runSteps()
		s.driving = false
	}
	s.delivering = false
}

func (s *Stream) runSteps() {
	for s.current != nil {
		outcome, err := s.step(s.current)
		switch outcome {
		case stepProgressed:
		case stepSuspend:
			return
		case stepFailed:
			s.log.V(1).Info("frame decode failed", "err", err)
			s.fail(err)
			return
		}
	}
}
