package stompio

// Header holds a frame's decoded header fields. Names are unique; when
// the wire carries the same name twice, the later value wins.
type Header map[string]string

// Get returns the value for name, or "" when absent.
func (h Header) Get(name string) string {
	return h[name]
}

// Lookup returns the value for name and whether it was present.
func (h Header) Lookup(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

type parseState int

const (
	stateCommand parseState = iota
	stateHeaders
	stateBody
	stateNullTerminator
	stateTrailer
	stateDone
)

type bodyMode int

const (
	modeUnset bodyMode = iota
	modeFixed
	modeDelimited
)

// Frame is one decoded protocol message. Command and Header are final by
// the time the frame is handed to a request's ready callback; the body
// streams in afterwards through Body.
type Frame struct {
	Command string
	Header  Header

	body *Body

	state      parseState
	mode       bodyMode
	remaining  int64
	inProgress bool
	delivered  bool
}

func newFrame(s *Stream) *Frame {
	return &Frame{
		Header: Header{},
		body:   &Body{stream: s},
	}
}

// Body returns the frame's body sequence.
func (f *Frame) Body() *Body {
	return f.body
}
