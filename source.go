package stompio

import "bytes"

// readBuffer is the byte source the parser pulls from. The transport
// side appends chunks as they arrive; the parser consumes them in
// arbitrary slices and may push over-read bytes back to the front.
//
// Reads return sub-slices of the live region. The live region only ever
// advances forward, so returned slices stay valid across later feeds.
type readBuffer struct {
	data  []byte
	ended bool
}

func (b *readBuffer) feed(p []byte) {
	b.data = append(b.data, p...)
}

// unshift puts p back so it is read before anything currently buffered.
func (b *readBuffer) unshift(p []byte) {
	if len(p) == 0 {
		return
	}
	merged := make([]byte, 0, len(p)+len(b.data))
	merged = append(merged, p...)
	b.data = append(merged, b.data...)
}

// readChunk takes everything currently buffered, or nil.
func (b *readBuffer) readChunk() []byte {
	if len(b.data) == 0 {
		return nil
	}
	chunk := b.data
	b.data = b.data[len(b.data):]
	return chunk
}

// readAtMost takes up to n buffered bytes, or nil when empty.
func (b *readBuffer) readAtMost(n int64) []byte {
	if len(b.data) == 0 || n <= 0 {
		return nil
	}
	if int64(len(b.data)) < n {
		n = int64(len(b.data))
	}
	chunk := b.data[:n]
	b.data = b.data[n:]
	return chunk
}

func (b *readBuffer) readByte() (byte, bool) {
	if len(b.data) == 0 {
		return 0, false
	}
	c := b.data[0]
	b.data = b.data[1:]
	return c, true
}

// readLine takes one line, excluding the line feed. ok is false while no
// complete line is buffered. A line whose content exceeds limit bytes is
// an error, reported as soon as it is detectable.
func (b *readBuffer) readLine(limit int) (line []byte, ok bool, err error) {
	i := bytes.IndexByte(b.data, '\n')
	if i < 0 {
		if len(b.data) > limit {
			return nil, false, ErrLineTooLong
		}
		return nil, false, nil
	}
	if i > limit {
		return nil, false, ErrLineTooLong
	}
	line = b.data[:i]
	b.data = b.data[i+1:]
	return line, true, nil
}
