// Package catalog holds the fixed, ordered list of showcase videos and the
// rules for splitting it into one main video and the preview cards.
package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmpty         = errors.New("catalog has no cards")
	ErrDuplicateID   = errors.New("duplicate card id")
	ErrDuplicateFile = errors.New("duplicate card source")
)

// Card is one entry of the showcase. Source is an asset name until the
// catalog is resolved, a playable URL afterwards.
type Card struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Duration string `json:"duration"`
	Source   string `json:"source"`
}

// Resolver turns an asset name into a URL the browser can load.
type Resolver interface {
	URL(ctx context.Context, name string) (string, error)
}

type Catalog struct {
	cards []Card
}

func New(cards ...Card) (Catalog, error) {
	if len(cards) == 0 {
		return Catalog{}, ErrEmpty
	}
	ids := make(map[string]struct{}, len(cards))
	sources := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		if c.ID == "" || c.Source == "" {
			return Catalog{}, fmt.Errorf("card %q: id and source are required", c.Title)
		}
		if _, ok := ids[c.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		if _, ok := sources[c.Source]; ok {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateFile, c.Source)
		}
		ids[c.ID] = struct{}{}
		sources[c.Source] = struct{}{}
	}
	return Catalog{cards: append([]Card(nil), cards...)}, nil
}

func MustNew(cards ...Card) Catalog {
	c, err := New(cards...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) Len() int { return len(c.cards) }

func (c Catalog) Cards() []Card {
	return append([]Card(nil), c.cards...)
}

// Featured is the card shown in the main player before any selection.
func (c Catalog) Featured() Card {
	if len(c.cards) == 0 {
		return Card{}
	}
	return c.cards[0]
}

func (c Catalog) Lookup(id string) (Card, bool) {
	for _, card := range c.cards {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

func (c Catalog) BySource(source string) (Card, bool) {
	for _, card := range c.cards {
		if card.Source == source {
			return card, true
		}
	}
	return Card{}, false
}

// Previews lists the cards in catalog order, leaving out the one whose
// source is currently in the main player.
func (c Catalog) Previews(mainSource string) []Card {
	previews := make([]Card, 0, len(c.cards))
	for _, card := range c.cards {
		if card.Source == mainSource {
			continue
		}
		previews = append(previews, card)
	}
	return previews
}

// Resolve returns a copy of the catalog with every source replaced by the
// URL the resolver produces for it.
func (c Catalog) Resolve(ctx context.Context, r Resolver) (Catalog, error) {
	resolved := make([]Card, len(c.cards))
	for i, card := range c.cards {
		url, err := r.URL(ctx, card.Source)
		if err != nil {
			return Catalog{}, fmt.Errorf("resolve %s: %w", card.ID, err)
		}
		card.Source = url
		resolved[i] = card
	}
	return Catalog{cards: resolved}, nil
}
