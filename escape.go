package stompio

import "bytes"

// Header tokens escape the bytes that carry framing meaning:
// \n for a line feed, \c for a colon, \\ for a backslash.

func decodeHeaderToken(b []byte) (string, error) {
	if bytes.IndexByte(b, '\\') < 0 {
		return string(b), nil
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i == len(b) {
			return "", ErrInvalidEscape
		}
		switch b[i] {
		case 'n':
			out = append(out, '\n')
		case 'c':
			out = append(out, ':')
		case '\\':
			out = append(out, '\\')
		default:
			return "", ErrInvalidEscape
		}
	}
	return string(out), nil
}
