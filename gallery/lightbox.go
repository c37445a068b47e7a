package gallery

// Lightbox is the full-screen overlay. It walks the same combined sequence as the
// inline Gallery but keeps its own index, so navigating here never changes what the
// inline gallery displays.
//
// The key handler is only registered while the overlay is open.
type Lightbox struct {
	seq     Sequence
	keys    KeySource
	open    bool
	index   int
	release func()
}

// NewLightbox creates a closed lightbox. keys may be nil when keyboard input is not wired.
func NewLightbox(seq Sequence, keys KeySource) *Lightbox {
	return &Lightbox{seq: seq, keys: keys}
}

// IsOpen reports whether the overlay is visible
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Index returns the lightbox position in the combined sequence
func (l *Lightbox) Index() int {
	return l.index
}

// Current returns the ref shown by the overlay
func (l *Lightbox) Current() string {
	ref, _ := l.seq.At(l.index)
	return ref
}

// Open shows the overlay at index (normally the gallery's current index).
// An index outside the sequence starts at 0. Opening an open lightbox only repositions it.
func (l *Lightbox) Open(index int) {
	if index < 0 || index >= l.seq.Len() {
		index = 0
	}
	l.index = index
	if l.open {
		return
	}
	l.open = true
	if l.keys != nil {
		l.release = l.keys.Subscribe(l.handleKey)
	}
}

// Navigate steps the overlay with wraparound. It does nothing while closed.
func (l *Lightbox) Navigate(dir Direction) bool {
	if !l.open {
		return false
	}
	if next := step(l.index, l.seq.Len(), dir); next >= 0 {
		l.index = next
	}
	return true
}

// JumpTo moves the overlay straight to index (thumbnail click).
// Indexes outside the sequence are ignored.
func (l *Lightbox) JumpTo(index int) bool {
	if !l.open || index < 0 || index >= l.seq.Len() {
		return false
	}
	l.index = index
	return true
}

// Close hides the overlay and drops its key handler
func (l *Lightbox) Close() {
	l.open = false
	if l.release != nil {
		l.release()
		l.release = nil
	}
}

// Teardown is called when the owning view goes away, whatever state the overlay is in
func (l *Lightbox) Teardown() {
	l.Close()
}

func (l *Lightbox) handleKey(key Key) {
	if !l.open {
		return
	}
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowRight:
		l.Navigate(Next)
	case KeyArrowLeft:
		l.Navigate(Prev)
	}
}
