package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/viewstage/ink"
)

func sampleSession() *Session {
	return &Session{
		Config:   ink.DefaultConfig(),
		Viewport: ink.Viewport{X: 0, Y: 0, Width: 1280, Height: 720},
		Strokes: []ink.Stroke{
			{
				Kind: ink.KindDraw,
				Points: []ink.Segment{
					ink.Seg(0, 0, 10, 0),
					ink.Seg(10, 0, 20, 5),
				},
				Color:     "#ff0000",
				LineWidth: 4,
			},
			{
				Kind:       ink.KindErase,
				Points:     []ink.Segment{ink.Seg(5, 0, 6, 0)},
				EraserSize: 10,
			},
		},
	}
}

func TestSession_RoundTrip(t *testing.T) {
	orig := sampleSession()
	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Version != Version {
		t.Errorf("Version = %d, want %d", got.Version, Version)
	}
	if got.Config != orig.Config {
		t.Errorf("Config = %+v, want %+v", got.Config, orig.Config)
	}
	if got.Viewport != orig.Viewport {
		t.Errorf("Viewport = %+v, want %+v", got.Viewport, orig.Viewport)
	}
	if len(got.Strokes) != len(orig.Strokes) {
		t.Fatalf("got %d strokes, want %d", len(got.Strokes), len(orig.Strokes))
	}
	for i := range got.Strokes {
		g, w := got.Strokes[i], orig.Strokes[i]
		if g.Kind != w.Kind || g.Color != w.Color || g.LineWidth != w.LineWidth || g.EraserSize != w.EraserSize {
			t.Errorf("stroke %d style changed: %+v -> %+v", i, w, g)
		}
		if len(g.Points) != len(w.Points) {
			t.Fatalf("stroke %d has %d points, want %d", i, len(g.Points), len(w.Points))
		}
		for j := range g.Points {
			if g.Points[j] != w.Points[j] {
				t.Errorf("stroke %d point %d changed: %v -> %v", i, j, w.Points[j], g.Points[j])
			}
		}
	}
}

// Snapshots are deterministic: encoding the same session twice yields
// identical bytes.
func TestSession_DeterministicEncoding(t *testing.T) {
	a, err := Encode(sampleSession())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(sampleSession())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same session differ")
	}
}

func TestSession_DecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xff, 0x00, 0x17}); err == nil {
		t.Fatal("want error decoding garbage")
	}
}

func TestSession_UnsupportedVersion(t *testing.T) {
	future := map[int]any{1: Version + 1}
	data, err := cbor.Marshal(future)
	if err != nil {
		t.Fatalf("marshal future snapshot: %v", err)
	}
	_, err = Decode(data)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode = %v, want ErrUnsupportedVersion", err)
	}
}

func TestSession_DecodeRejectsBadConfig(t *testing.T) {
	s := sampleSession()
	s.Config.Epsilon = -1
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("want validation error for negative epsilon")
	}
}
