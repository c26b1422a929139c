package stompio

import "io"

// Body is the pull side of a frame's body. The parser appends chunks as
// the byte source yields them; the consumer pulls at its own pace. A
// pull on an empty body triggers a drive pass, so consumption pace is
// what advances parsing once headers are out.
type Body struct {
	stream *Stream
	chunks [][]byte
	rest   []byte
	ended  bool
	err    error
}

// Next returns the next body chunk. It returns io.EOF after the last
// chunk, ErrNoData when nothing is buffered yet, and the stream's
// terminal error if decoding failed mid-body.
func (b *Body) Next() ([]byte, error) {
	if len(b.chunks) == 0 && !b.ended && b.err == nil {
		b.stream.pump()
	}
	if len(b.chunks) > 0 {
		chunk := b.chunks[0]
		b.chunks = b.chunks[1:]
		return chunk, nil
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.ended {
		return nil, io.EOF
	}
	return nil, ErrNoData
}

// Read implements io.Reader over the chunk sequence. Like Next it does
// not wait: a read with no buffered bytes returns ErrNoData.
func (b *Body) Read(p []byte) (int, error) {
	for len(b.rest) == 0 {
		chunk, err := b.Next()
		if err != nil {
			return 0, err
		}
		b.rest = chunk
	}
	n := copy(p, b.rest)
	b.rest = b.rest[n:]
	return n, nil
}

// ExpectEmpty drains the body and reports whether it was in fact empty.
// The error is ErrNoData when the body has not fully arrived yet.
func (b *Body) ExpectEmpty() (bool, error) {
	empty := len(b.rest) == 0
	b.rest = nil
	for {
		chunk, err := b.Next()
		switch err {
		case nil:
			if len(chunk) > 0 {
				empty = false
			}
		case io.EOF:
			return empty, nil
		default:
			return empty, err
		}
	}
}

func (b *Body) push(p []byte) {
	if len(p) > 0 {
		b.chunks = append(b.chunks, p)
	}
}

func (b *Body) end() {
	b.ended = true
}

func (b *Body) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
