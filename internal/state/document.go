// Package state holds the persisted drawing: an ordered list of committed
// strokes with enough metadata to merge strokes from other peers.
package state

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"inkpad/internal/ink"
)

// Stroke is one committed gesture: its raw point group plus capture
// metadata. Points are surface-local, times in milliseconds.
type Stroke struct {
	ID      string         `json:"id"`
	Owner   string         `json:"owner_id"`
	Pen     string         `json:"pen,omitempty"`
	Points  ink.PointGroup `json:"points"`
	Lamport uint64         `json:"lamport"`
}

// Document is the append-only drawing. Local strokes get an ID minted
// from this site's uuid and logical clock; remote strokes are merged by
// ID so a relayed stroke is never applied twice.
type Document struct {
	mu      sync.RWMutex
	site    string
	clock   uint64
	strokes []Stroke
	seen    map[string]struct{}
}

func NewDocument() *Document {
	return &Document{
		site: uuid.NewString(),
		seen: make(map[string]struct{}),
	}
}

// Site returns this document's peer identity.
func (d *Document) Site() string {
	return d.site
}

// AppendLocal commits a locally captured gesture and returns the stroke
// ready for broadcast.
func (d *Document) AppendLocal(points ink.PointGroup, pen string) Stroke {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clock++
	s := Stroke{
		ID:      fmt.Sprintf("stroke-%s-%d", d.site, d.clock),
		Owner:   d.site,
		Pen:     pen,
		Points:  append(ink.PointGroup(nil), points...),
		Lamport: d.clock,
	}
	d.strokes = append(d.strokes, s)
	d.seen[s.ID] = struct{}{}
	return s
}

// MergeRemote adds a stroke received from a peer. It reports whether the
// stroke was new and should be drawn.
func (d *Document) MergeRemote(s Stroke) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[s.ID]; ok {
		log.Printf("[doc] stroke %s already merged, ignoring", s.ID)
		return false
	}
	if s.Lamport > d.clock {
		d.clock = s.Lamport
	}
	d.strokes = append(d.strokes, s)
	d.seen[s.ID] = struct{}{}
	return true
}

// RemoveByOwner drops all strokes of one peer; owner "all" empties the
// document. Returns the number of strokes removed.
func (d *Document) RemoveByOwner(owner string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if owner == "all" {
		n := len(d.strokes)
		d.strokes = nil
		d.seen = make(map[string]struct{})
		return n
	}

	kept := d.strokes[:0]
	removed := 0
	for _, s := range d.strokes {
		if s.Owner == owner {
			delete(d.seen, s.ID)
			removed++
			continue
		}
		kept = append(kept, s)
	}
	d.strokes = kept
	return removed
}

// Strokes returns a copy of the stroke list in commit order.
func (d *Document) Strokes() []Stroke {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Stroke(nil), d.strokes...)
}

// Groups flattens the document into the point-group list the ink
// pipeline replays.
func (d *Document) Groups() []ink.PointGroup {
	d.mu.RLock()
	defer d.mu.RUnlock()

	groups := make([]ink.PointGroup, len(d.strokes))
	for i, s := range d.strokes {
		groups[i] = append(ink.PointGroup(nil), s.Points...)
	}
	return groups
}

func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.strokes)
}

// Encode writes the stroke list as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	d.mu.RLock()
	strokes := append([]Stroke(nil), d.strokes...)
	d.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(strokes); err != nil {
		return fmt.Errorf("encoding drawing: %w", err)
	}
	return nil
}

// Decode replaces the document contents wholesale with the stroke list
// read from r, advancing the clock past any merged stamp.
func (d *Document) Decode(r io.Reader) error {
	var strokes []Stroke
	if err := json.NewDecoder(r).Decode(&strokes); err != nil {
		return fmt.Errorf("decoding drawing: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.strokes = strokes
	d.seen = make(map[string]struct{}, len(strokes))
	for _, s := range strokes {
		d.seen[s.ID] = struct{}{}
		if s.Lamport > d.clock {
			d.clock = s.Lamport
		}
	}
	return nil
}
