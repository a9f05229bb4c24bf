package panel

import (
	"testing"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
)

func TestAcks_RestartDoesNotStack(t *testing.T) {
	a := NewAcks()
	k := SwatchKey{ID: "001", Index: 0}

	first := a.Start(k)
	second := a.Start(k)

	if a.Expire(k, first) {
		t.Error("stale generation cleared the ack")
	}
	if !a.Active(k) {
		t.Fatal("ack should still be active after stale expiry")
	}
	if !a.Expire(k, second) {
		t.Error("latest generation did not clear the ack")
	}
	if a.Active(k) {
		t.Error("ack still active after expiry")
	}
}

func TestAcks_IndependentSwatches(t *testing.T) {
	a := NewAcks()
	k1 := SwatchKey{ID: "001", Index: 0}
	k2 := SwatchKey{ID: "001", Index: 1}

	g1 := a.Start(k1)
	a.Start(k2)
	a.Expire(k1, g1)

	if a.Active(k1) {
		t.Error("k1 still active")
	}
	if !a.Active(k2) {
		t.Error("k2 expired with k1")
	}
}

func TestAcks_Retain(t *testing.T) {
	records := []palette.Record{
		{ID: "001", Colors: []string{"#111111", "#222222"}},
		{ID: "003", Colors: []string{"#333333"}},
	}

	a := NewAcks()
	kept := SwatchKey{ID: "001", Index: 1}
	gone := SwatchKey{ID: "002", Index: 0}
	outOfRange := SwatchKey{ID: "003", Index: 4}
	gen := a.Start(kept)
	goneGen := a.Start(gone)
	a.Start(outOfRange)

	a.Retain(records, gallery.ModeGrid)

	if !a.Active(kept) {
		t.Error("visible swatch lost its ack")
	}
	if a.Active(gone) || a.Active(outOfRange) {
		t.Error("torn-down swatches kept their ack")
	}
	// A pending expiry for a torn-down swatch is a no-op.
	if a.Expire(gone, goneGen) {
		t.Error("expiry of torn-down swatch reported a change")
	}

	a.Retain(records, gallery.ModeCompact)
	if a.Active(kept) || a.Len() != 0 {
		t.Error("compact mode should drop every ack")
	}
	if a.Expire(kept, gen) {
		t.Error("expiry after compact teardown reported a change")
	}
}
