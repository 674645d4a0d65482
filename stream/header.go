package stream

import (
	"bytes"
	"io"

	"github.com/wippyai/histream/errors"
	"github.com/wippyai/histream/internal/layout"
)

// Magic is the version token at the start of every stream.
const Magic = "histr10\x00"

// HeaderSize is the size of the stream header in bytes.
const HeaderSize = layout.StreamHeaderSize

// Header is the fixed stream header: the magic token and the location of
// the attribute tag remap table.
type Header struct {
	Magic       [layout.MagicSize]byte
	RemapOffset uint32
	RemapCount  uint32
}

// MagicString returns the magic token without trailing NUL bytes.
func (h Header) MagicString() string {
	return string(bytes.TrimRight(h.Magic[:], "\x00"))
}

// Validate reports a magic_mismatch error when the header was not written
// by this package.
func (h Header) Validate() error {
	if string(h.Magic[:]) != Magic {
		return errors.MagicMismatch(h.Magic[:])
	}
	return nil
}

// Valid reports whether the header carries the expected magic token.
func (h Header) Valid() bool {
	return h.Validate() == nil
}

// ReadHeader decodes the header at the start of b. It checks the size only;
// use Valid to check the magic.
func ReadHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, errors.HeaderTooSmall(len(b), HeaderSize)
	}
	h := layout.DecodeStreamHeader(b)
	return Header(h), nil
}

// Probe reads just the stream header from r. It is the cheap way to sniff
// whether a file is a stream before loading it.
func Probe(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	n, err := io.ReadFull(r, b[:])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errors.HeaderTooSmall(n, HeaderSize)
		}
		return Header{}, errors.Wrap(errors.PhaseRead, errors.KindHeaderTooSmall, err, "reading stream header")
	}
	return ReadHeader(b[:])
}
