package stompio

import (
	"bytes"
	"strconv"
)

// MaxLineLength bounds the command line and each header line.
const MaxLineLength = 4096

const contentLengthHeader = "content-length"

// stepOutcome is the three-way result of one parser step: it consumed
// bytes and the loop should continue, it needs more input and the loop
// must suspend, or it failed and the stream is done.
type stepOutcome int

const (
	stepProgressed stepOutcome = iota
	stepSuspend
	stepFailed
)

func (s *Stream) step(f *Frame) (stepOutcome, error) {
	switch f.state {
	case stateCommand:
		return s.stepCommand(f)
	case stateHeaders:
		return s.stepHeaders(f)
	case stateBody:
		if f.mode == modeFixed {
			return s.stepFixedBody(f)
		}
		return s.stepDelimitedBody(f)
	case stateNullTerminator:
		return s.stepNullTerminator(f)
	case stateTrailer:
		return s.stepTrailer(f)
	}
	return stepSuspend, nil
}

func (s *Stream) stepCommand(f *Frame) (stepOutcome, error) {
	line, ok, err := s.src.readLine(MaxLineLength)
	if err != nil {
		return stepFailed, err
	}
	if !ok {
		return stepSuspend, nil
	}
	if len(line) == 0 {
		// heart-beat between frames
		return stepProgressed, nil
	}

	command, err := decodeHeaderToken(line)
	if err != nil {
		return stepFailed, err
	}
	f.Command = command
	f.inProgress = true
	f.state = stateHeaders
	return stepProgressed, nil
}

func (s *Stream) stepHeaders(f *Frame) (stepOutcome, error) {
	line, ok, err := s.src.readLine(MaxLineLength)
	if err != nil {
		return stepFailed, err
	}
	if !ok {
		return stepSuspend, nil
	}
	if len(line) == 0 {
		return s.finishHeaders(f)
	}

	sep := bytes.IndexByte(line, ':')
	if sep < 0 {
		return stepFailed, ErrMalformedHeader
	}
	name, err := decodeHeaderToken(line[:sep])
	if err != nil {
		return stepFailed, err
	}
	value, err := decodeHeaderToken(line[sep+1:])
	if err != nil {
		return stepFailed, err
	}
	f.Header[name] = value
	return stepProgressed, nil
}

// finishHeaders seals the header section, picks the body mode and hands
// the frame to its requester. Delivery happens after the step loop
// suspends, never from inside it.
func (s *Stream) finishHeaders(f *Frame) (stepOutcome, error) {
	if v, ok := f.Header.Lookup(contentLengthHeader); ok {
		n, err := strconv.ParseUint(v, 10, 63)
		if err != nil {
			return stepFailed, ErrMalformedContentLength
		}
		f.mode = modeFixed
		f.remaining = int64(n)
	} else {
		f.mode = modeDelimited
	}
	f.state = stateBody
	f.delivered = true
	s.deliveries = append(s.deliveries, delivery{frame: f, req: s.currentReq})
	return stepSuspend, nil
}

func (s *Stream) stepFixedBody(f *Frame) (stepOutcome, error) {
	if f.remaining > 0 {
		chunk := s.src.readAtMost(f.remaining)
		if chunk == nil {
			return stepSuspend, nil
		}
		f.body.push(chunk)
		f.remaining -= int64(len(chunk))
		if f.remaining > 0 {
			return stepSuspend, nil
		}
	}
	f.body.end()
	f.state = stateNullTerminator
	return stepProgressed, nil
}

func (s *Stream) stepDelimitedBody(f *Frame) (stepOutcome, error) {
	chunk := s.src.readChunk()
	if chunk == nil {
		return stepSuspend, nil
	}
	if i := bytes.IndexByte(chunk, 0); i >= 0 {
		f.body.push(chunk[:i])
		s.src.unshift(chunk[i+1:])
		f.body.end()
		f.state = stateTrailer
		return stepProgressed, nil
	}
	f.body.push(chunk)
	return stepSuspend, nil
}

func (s *Stream) stepNullTerminator(f *Frame) (stepOutcome, error) {
	c, ok := s.src.readByte()
	if !ok {
		return stepSuspend, nil
	}
	if c != 0 {
		return stepFailed, ErrMissingNullTerminator
	}
	f.state = stateTrailer
	return stepProgressed, nil
}

// stepTrailer consumes the cosmetic line feed after a frame, if any.
// Anything else belongs to the next frame and goes back to the source.
func (s *Stream) stepTrailer(f *Frame) (stepOutcome, error) {
	f.inProgress = false
	c, ok := s.src.readByte()
	if !ok {
		if !s.src.ended {
			return stepSuspend, nil
		}
	} else if c != '\n' {
		s.src.unshift([]byte{c})
	}
	f.state = stateDone
	s.finishCurrent()
	return stepProgressed, nil
}
