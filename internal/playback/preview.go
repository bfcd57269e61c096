package playback

import "github.com/storybite/storybite/internal/catalog"

// Preview is a card thumbnail that plays muted and looping only while the
// pointer is over it.
type Preview struct {
	card   catalog.Card
	player *Player
}

func NewPreview(card catalog.Card, media Media, opts ...Option) *Preview {
	opts = append(opts, WithAutoplay(false), WithMuted(true))
	player := NewPlayer(media, opts...)
	player.SetLoop(true)
	player.Mount(card.Source)
	return &Preview{card: card, player: player}
}

func (p *Preview) Card() catalog.Card { return p.card }

func (p *Preview) Player() *Player { return p.player }

func (p *Preview) Hover() {
	p.player.SetMuted(true)
	p.player.SetLoop(true)
	p.player.SetPlaying(true)
}

// Unhover stops the preview and rewinds it so the next hover starts fresh.
func (p *Preview) Unhover() {
	p.player.Rewind()
}
