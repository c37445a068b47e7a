package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"pavexpert/gallery"
	"pavexpert/models"
	"pavexpert/repository"
)

// ErrSessionNotFound is returned for unknown, closed or expired gallery sessions
var ErrSessionNotFound = errors.New("gallery session not found")

// DefaultMaxGallerySessions caps open sessions when no limit is configured
const DefaultMaxGallerySessions = 10000

// GalleryServiceInterface defines the contract for server-held product galleries
type GalleryServiceInterface interface {
	Create(ctx context.Context, productID int) (gallery.View, error)
	Open(product *models.ProductDetail) (gallery.View, error)
	View(sessionID string) (gallery.View, error)
	Select(sessionID, ref string) (gallery.View, error)
	SelectIndex(sessionID string, index int) (gallery.View, error)
	Navigate(sessionID string, dir gallery.Direction) (gallery.View, error)
	OpenLightbox(sessionID string, index *int) (gallery.View, error)
	CloseLightbox(sessionID string) (gallery.View, error)
	NavigateLightbox(sessionID string, dir gallery.Direction) (gallery.View, error)
	JumpLightbox(sessionID string, index int) (gallery.View, error)
	PressKey(sessionID string, key gallery.Key) (gallery.View, bool, error)
	Close(sessionID string) error
}

// gallerySession is one product view: its inline gallery, its lightbox and the
// key source the lightbox listens to. mu serializes every change to the view.
type gallerySession struct {
	id        string
	productID int

	mu       sync.Mutex
	gallery  *gallery.Gallery
	lightbox *gallery.Lightbox
	keys     *gallery.KeyDispatcher
	lastSeen time.Time
	closed   bool
}

// teardown closes the lightbox, releasing its key handler. Safe to call twice.
func (s *gallerySession) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.lightbox.Teardown()
	s.closed = true
}

func (s *gallerySession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *gallerySession) view() gallery.View {
	v := gallery.BuildView(s.gallery, s.lightbox)
	v.SessionID = s.id
	return v
}

// GalleryService keeps the display state of open product galleries.
// Lock order is s.mu, then a session's mu.
type GalleryService struct {
	products    ProductServiceInterface
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*gallerySession
}

// NewGalleryService creates a new GalleryService. Sessions idle for longer than ttl are dropped,
// and once maxSessions are open the least recently used one makes room for a new one.
func NewGalleryService(products ProductServiceInterface, ttl time.Duration, maxSessions int) *GalleryService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxGallerySessions
	}
	return &GalleryService{
		products:    products,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*gallerySession),
	}
}

// Ensure GalleryService implements GalleryServiceInterface
var _ GalleryServiceInterface = (*GalleryService)(nil)

// Create loads a product and opens a gallery for it
func (s *GalleryService) Create(ctx context.Context, productID int) (gallery.View, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return gallery.View{}, err
	}
	return s.Open(product)
}

// Open starts a gallery session for an already loaded product, showing its first color image
func (s *GalleryService) Open(product *models.ProductDetail) (gallery.View, error) {
	if product == nil {
		return gallery.View{}, repository.ErrNotFound
	}

	for _, img := range gallery.ParseImages(append(append([]string{}, product.ColorImages...), product.ProjectImages...)) {
		if !img.IsReal() && !img.IsPlaceholder() {
			log.Printf("⚠️  Product %d: image %q is neither a stored path nor a placeholder", product.ID, img.Ref)
		}
	}

	seq := gallery.NewSequence(product.ColorImages, product.ProjectImages)
	keys := gallery.NewKeyDispatcher()
	session := &gallerySession{
		id:        uuid.NewString(),
		productID: product.ID,
		gallery:   gallery.New(seq, product.MainImage),
		lightbox:  gallery.NewLightbox(seq, keys),
		keys:      keys,
		lastSeen:  s.now(),
	}

	s.mu.Lock()
	evicted := s.evictOldestLocked()
	s.sessions[session.id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	if evicted != nil {
		evicted.teardown()
		log.Printf("⚠️  Gallery session limit (%d) reached, evicted %s", s.maxSessions, evicted.id)
	}
	log.Printf("✓ Gallery session %s opened for product %d (%d open)", session.id, product.ID, count)

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// evictOldestLocked removes the least recently used session when the store is full.
// The caller holds s.mu and tears the returned session down after unlocking.
func (s *GalleryService) evictOldestLocked() *gallerySession {
	if len(s.sessions) < s.maxSessions {
		return nil
	}
	var oldest *gallerySession
	var oldestSeen time.Time
	for _, session := range s.sessions {
		seen := session.idleSince()
		if oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = session, seen
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.id)
	}
	return oldest
}

// lookup returns a live session, tearing it down first when it has expired
func (s *GalleryService) lookup(sessionID string) (*gallerySession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.now().Sub(session.idleSince()) > s.ttl {
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		session.teardown()
		log.Printf("⏱️  Gallery session %s expired", sessionID)
		return nil, ErrSessionNotFound
	}
	s.mu.Unlock()
	return session, nil
}

// update runs fn with the session locked and returns the resulting view
func (s *GalleryService) update(sessionID string, fn func(*gallerySession) error) (gallery.View, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return gallery.View{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return gallery.View{}, ErrSessionNotFound
	}
	session.lastSeen = s.now()

	if fn != nil {
		if err := fn(session); err != nil {
			return gallery.View{}, err
		}
	}
	return session.view(), nil
}

// View returns the current state of a session
func (s *GalleryService) View(sessionID string) (gallery.View, error) {
	return s.update(sessionID, nil)
}

// Select shows ref in the main slot
func (s *GalleryService) Select(sessionID, ref string) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		gs.gallery.Select(ref)
		return nil
	})
}

// SelectIndex shows the index-th entry of the combined sequence
func (s *GalleryService) SelectIndex(sessionID string, index int) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		return gs.gallery.SelectIndex(index)
	})
}

// Navigate steps the main slot with wraparound
func (s *GalleryService) Navigate(sessionID string, dir gallery.Direction) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		gs.gallery.Navigate(dir)
		return nil
	})
}

// OpenLightbox opens the overlay at index, or at the image shown in the main slot when index is nil
func (s *GalleryService) OpenLightbox(sessionID string, index *int) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		at := gs.gallery.Index()
		if index != nil {
			at = *index
		}
		gs.lightbox.Open(at)
		return nil
	})
}

// CloseLightbox hides the overlay
func (s *GalleryService) CloseLightbox(sessionID string) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		gs.lightbox.Close()
		return nil
	})
}

// NavigateLightbox steps the overlay. The main slot is left untouched.
func (s *GalleryService) NavigateLightbox(sessionID string, dir gallery.Direction) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		gs.lightbox.Navigate(dir)
		return nil
	})
}

// JumpLightbox moves the overlay to a thumbnail
func (s *GalleryService) JumpLightbox(sessionID string, index int) (gallery.View, error) {
	return s.update(sessionID, func(gs *gallerySession) error {
		if !gs.lightbox.JumpTo(index) && gs.lightbox.IsOpen() {
			return fmt.Errorf("%w: %d", gallery.ErrIndexOutOfRange, index)
		}
		return nil
	})
}

// PressKey delivers a key press to the session. handled is false when nothing was listening.
func (s *GalleryService) PressKey(sessionID string, key gallery.Key) (gallery.View, bool, error) {
	var handled bool
	view, err := s.update(sessionID, func(gs *gallerySession) error {
		handled = gs.keys.Dispatch(key)
		return nil
	})
	return view, handled, err
}

// Close tears a session down and forgets it
func (s *GalleryService) Close(sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.teardown()
	log.Printf("✓ Gallery session %s closed", sessionID)
	return nil
}

// Sweep tears down every expired session and returns how many were dropped
func (s *GalleryService) Sweep() int {
	now := s.now()
	var expired []*gallerySession

	s.mu.Lock()
	for id, session := range s.sessions {
		if now.Sub(session.idleSince()) > s.ttl {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.teardown()
	}
	if len(expired) > 0 {
		log.Printf("⏱️  Dropped %d expired gallery sessions", len(expired))
	}
	return len(expired)
}

// Run sweeps expired sessions until ctx is done, then tears down the remaining ones
func (s *GalleryService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *GalleryService) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*gallerySession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.teardown()
	}
}

// Len returns the number of open sessions
func (s *GalleryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
