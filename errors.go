package stompio

import "errors"

// ProtocolError reports a violation of the wire format. Any ProtocolError
// is terminal for the stream it occurred on.
type ProtocolError string

func (e ProtocolError) Error() string {
	return "stomp: " + string(e)
}

const (
	ErrLineTooLong            = ProtocolError("line exceeds maximum length")
	ErrMalformedHeader        = ProtocolError("header line without separator")
	ErrInvalidEscape          = ProtocolError("invalid escape sequence")
	ErrMalformedContentLength = ProtocolError("malformed content-length")
	ErrMissingNullTerminator  = ProtocolError("missing null terminator after body")
)

var (
	// ErrNoFrame is delivered to a pending request when the stream ends
	// before that request began decoding. It is a completion signal, not
	// a failure of the stream.
	ErrNoFrame = errors.New("stomp: no more frames")

	// ErrUnexpectedEnd reports that the byte source ended in the middle
	// of a frame.
	ErrUnexpectedEnd = errors.New("stomp: unexpected end of stream")

	// ErrNoData is returned by body reads when no bytes are buffered yet.
	// More bytes may become readable after the next feed.
	ErrNoData = errors.New("stomp: no data available")
)
