// Package gallery holds the product image gallery: slot classification, placeholder
// padding, the inline gallery state, the lightbox overlay and the HTML renderer.
package gallery

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a navigation step through the combined sequence
type Direction int

const (
	Next Direction = iota + 1
	Prev
)

// ErrIndexOutOfRange is returned by validated selections outside the sequence
var ErrIndexOutOfRange = errors.New("gallery: index out of range")

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	}
	return "unknown"
}

// ParseDirection parses "next" / "prev" (case-insensitive)
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		return Next, nil
	case "prev", "previous":
		return Prev, nil
	}
	return 0, fmt.Errorf("invalid direction %q: expected next or prev", s)
}

// step moves i one position in dir around a ring of n entries.
// An index outside the ring (not found) recovers to 0 whatever the direction.
func step(i, n int, dir Direction) int {
	if n <= 0 {
		return -1
	}
	if i < 0 || i >= n {
		return 0
	}
	if dir == Prev {
		return (i - 1 + n) % n
	}
	return (i + 1) % n
}

// Gallery is the inline (non-modal) gallery state: which image is shown in the
// main slot of one product view.
type Gallery struct {
	seq       Sequence
	displayed string
}

// New builds the gallery for a product. The first color image is shown initially,
// mainImage is only used when the color row is empty.
func New(seq Sequence, mainImage string) *Gallery {
	initial := mainImage
	if colors := seq.colors; len(colors) > 0 {
		initial = colors[0]
	}
	return &Gallery{seq: seq, displayed: initial}
}

// Sequence returns the sequence the gallery navigates
func (g *Gallery) Sequence() Sequence {
	return g.seq
}

// Displayed returns the ref currently shown in the main slot
func (g *Gallery) Displayed() string {
	return g.displayed
}

// Index returns the position of the displayed ref in the combined sequence, or -1
func (g *Gallery) Index() int {
	return g.seq.IndexOf(g.displayed)
}

// Select shows ref in the main slot. It is not checked against the sequence.
func (g *Gallery) Select(ref string) {
	g.displayed = ref
}

// SelectIndex shows the i-th entry of the combined sequence
func (g *Gallery) SelectIndex(i int) error {
	ref, ok := g.seq.At(i)
	if !ok {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, g.seq.Len())
	}
	g.displayed = ref
	return nil
}

// Navigate moves the main slot one step with wraparound and returns the new ref
func (g *Gallery) Navigate(dir Direction) string {
	next := step(g.Index(), g.seq.Len(), dir)
	if ref, ok := g.seq.At(next); ok {
		g.displayed = ref
	}
	return g.displayed
}
