package stompio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadBufferLines(t *testing.T) {
	at := assert.New(t)

	var b readBuffer
	b.feed([]byte("first\nsec"))

	line, ok, err := b.readLine(MaxLineLength)
	at.NoError(err)
	at.True(ok)
	at.Equal("first", string(line))

	// Incomplete line stays buffered.
	_, ok, err = b.readLine(MaxLineLength)
	at.NoError(err)
	at.False(ok)

	b.feed([]byte("ond\n"))
	line, ok, err = b.readLine(MaxLineLength)
	at.NoError(err)
	at.True(ok)
	at.Equal("second", string(line))
}

func TestReadBufferLineLimit(t *testing.T) {
	at := assert.New(t)

	var b readBuffer
	b.feed([]byte("abcdef\n"))
	_, _, err := b.readLine(5)
	at.Equal(ErrLineTooLong, err)

	// Over the limit with no line feed in sight.
	var c readBuffer
	c.feed([]byte("abcdefg"))
	_, _, err = c.readLine(6)
	at.Equal(ErrLineTooLong, err)

	// Exactly at the limit is fine.
	var d readBuffer
	d.feed([]byte("abcde\n"))
	line, ok, err := d.readLine(5)
	at.NoError(err)
	at.True(ok)
	at.Equal("abcde", string(line))
}

func TestReadBufferUnshift(t *testing.T) {
	at := assert.New(t)

	var b readBuffer
	b.feed([]byte("tail"))
	b.unshift([]byte("head-"))

	chunk := b.readChunk()
	at.Equal("head-tail", string(chunk))
	at.Nil(b.readChunk())
}

func TestReadBufferReadAtMost(t *testing.T) {
	at := assert.New(t)

	var b readBuffer
	b.feed([]byte("abcdef"))

	at.Equal("abcd", string(b.readAtMost(4)))
	at.Equal("ef", string(b.readAtMost(100)))
	at.Nil(b.readAtMost(5))

	c, ok := b.readByte()
	at.False(ok)
	at.Zero(c)

	b.feed([]byte{'x'})
	c, ok = b.readByte()
	at.True(ok)
	at.Equal(byte('x'), c)
}

func TestReadBufferChunksSurviveLaterFeeds(t *testing.T) {
	at := assert.New(t)

	var b readBuffer
	b.feed([]byte("one"))
	chunk := b.readChunk()
	b.feed([]byte("two"))
	b.feed([]byte("three"))

	at.Equal("one", string(chunk))
	at.Equal("twothree", string(b.readChunk()))
}
