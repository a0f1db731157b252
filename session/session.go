// Package session snapshots an in-progress annotation session to a
// compact binary blob for autosave and crash recovery. The encoding is
// deterministic CBOR with integer keys, so snapshots are stable across
// runs and cheap to diff.
package session

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/viewstage/ink"
)

// Version is the current snapshot format version.
const Version = 1

// ErrUnsupportedVersion is returned when decoding a snapshot written
// by a newer format.
var ErrUnsupportedVersion = errors.New("session: unsupported snapshot version")

// Session is everything needed to restore annotation over a captured
// frame: the capture configuration, the viewport, and the stroke list.
// The captured frame itself is cached separately by the host.
type Session struct {
	Version  int          `cbor:"1,keyasint"`
	Config   ink.Config   `cbor:"2,keyasint"`
	Viewport ink.Viewport `cbor:"3,keyasint"`
	Strokes  []ink.Stroke `cbor:"4,keyasint"`
}

// encMode is the deterministic encoder shared by all snapshots.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Encode serializes the session. The stored version is always the
// current format version, regardless of s.Version.
func Encode(s *Session) ([]byte, error) {
	snap := *s
	snap.Version = Version
	out, err := encMode.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("session: encode: %w", err)
	}
	return out, nil
}

// Decode restores a session from a snapshot blob.
func Decode(data []byte) (*Session, error) {
	var s Session
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	if s.Version > Version {
		return nil, ErrUnsupportedVersion
	}
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &s, nil
}
