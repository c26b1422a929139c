// Package websocket feeds a Stream from a websocket connection, for
// STOMP-style framing carried over websocket messages.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"io"

	"nhooyr.io/websocket"

	stompio "github.com/googollee/go-stomp.io"
)

// Feed reads messages from conn and writes their payloads into s until
// the connection closes. A normal closure ends the stream cleanly; any
// other failure fails it. Message boundaries carry no meaning: frames
// may span messages and messages may carry several frames.
func Feed(ctx context.Context, conn *websocket.Conn, s *stompio.Stream) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, io.EOF) {
				s.End()
				return nil
			}
			s.Fail(err)
			return fmt.Errorf("websocket read: %w", err)
		}
		if _, err := s.Write(data); err != nil {
			return fmt.Errorf("feed stream: %w", err)
		}
	}
}
