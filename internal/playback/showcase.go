package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/storybite/storybite/internal/catalog"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrNotPreview  = errors.New("card is in the main player")
)

// Scroller moves the viewport. smooth asks for an animated scroll.
type Scroller interface {
	ScrollToTop(smooth bool)
}

// MediaFactory returns the media element rendered for a preview card.
type MediaFactory func(card catalog.Card) Media

// Showcase is the demo page: one main player plus a preview per card. A
// card is never both main and preview.
type Showcase struct {
	mu       sync.Mutex
	catalog  catalog.Catalog
	main     *Player
	previews map[string]*Preview
	scroller Scroller
}

// NewShowcase mounts the catalog's featured card in the main player and a
// preview for every card. opts apply to the main player and the previews.
func NewShowcase(cat catalog.Catalog, main Media, newMedia MediaFactory, scroller Scroller, opts ...Option) *Showcase {
	s := &Showcase{
		catalog:  cat,
		main:     NewPlayer(main, opts...),
		previews: make(map[string]*Preview, cat.Len()),
		scroller: scroller,
	}
	for _, card := range cat.Cards() {
		s.previews[card.ID] = NewPreview(card, newMedia(card), opts...)
	}
	s.main.Mount(cat.Featured().Source)
	return s
}

func (s *Showcase) Main() *Player { return s.main }

// Featured returns the card currently in the main player.
func (s *Showcase) Featured() catalog.Card {
	card, _ := s.catalog.BySource(s.main.Source())
	return card
}

// Previews re-derives the preview list from the current main source.
func (s *Showcase) Previews() []catalog.Card {
	return s.catalog.Previews(s.main.Source())
}

// Select promotes a card to the main player and scrolls back to the top.
func (s *Showcase) Select(card catalog.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	known, ok := s.catalog.Lookup(card.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, card.ID)
	}
	if known.Source == s.main.Source() {
		return fmt.Errorf("%w: %s", ErrNotPreview, known.ID)
	}
	// The card leaves the preview list, so its thumbnail must not keep playing.
	s.previews[known.ID].Unhover()
	s.main.SwitchSource(known.Source)
	if s.scroller != nil {
		s.scroller.ScrollToTop(true)
	}
	return nil
}

// Hover starts a listed preview. The lock is held through Hover so a card
// promoted by a concurrent Select cannot start playing as a thumbnail.
func (s *Showcase) Hover(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.preview(id)
	if err != nil {
		return err
	}
	p.Hover()
	return nil
}

func (s *Showcase) Unhover(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.preview(id)
	if err != nil {
		return err
	}
	p.Unhover()
	return nil
}

// Preview returns the preview for a card that is currently listed.
func (s *Showcase) Preview(id string) (*Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview(id)
}

func (s *Showcase) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.previews {
		p.player.Unmount()
	}
	s.main.Unmount()
}

// preview must be called with s.mu held.
func (s *Showcase) preview(id string) (*Preview, error) {
	p, ok := s.previews[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	if p.card.Source == s.main.Source() {
		return nil, fmt.Errorf("%w: %s", ErrNotPreview, id)
	}
	return p, nil
}
