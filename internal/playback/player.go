package playback

import (
	"log/slog"
	"sync"
)

// Player owns one media element. Playing is the visitor's intent; it is
// never rolled back when the element refuses to play, so the next toggle
// still does the right thing.
type Player struct {
	mu       sync.Mutex
	media    Media
	logger   *slog.Logger
	autoplay bool

	state   State
	source  string
	playing bool
	muted   bool
	loop    bool
	hidden  bool
}

type Option func(*Player)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) { p.logger = logger }
}

// WithAutoplay controls whether Mount starts playback.
func WithAutoplay(autoplay bool) Option {
	return func(p *Player) { p.autoplay = autoplay }
}

func WithMuted(muted bool) Option {
	return func(p *Player) { p.muted = muted }
}

func NewPlayer(media Media, opts ...Option) *Player {
	p := &Player{
		media:    media,
		logger:   slog.Default(),
		autoplay: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mount binds the first source. With autoplay (or a play request made
// before mounting) it goes straight on to a play attempt.
func (p *Player) Mount(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if source == "" {
		return
	}
	p.media.SetMuted(p.muted)
	p.load(source)
	if p.autoplay || p.playing {
		p.playing = true
		p.start()
		return
	}
	p.state = Paused
}

// SetPlaying records the intent and immediately issues the matching request.
func (p *Player) SetPlaying(desired bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPlaying(desired)
}

// Toggle flips the intent and reports the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPlaying(!p.playing)
	return p.playing
}

// SwitchSource loads a new source from the start and plays it. The intent
// is playing afterwards whether or not the element accepted the request.
func (p *Player) SwitchSource(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.load(source)
	p.playing = true
	p.start()
}

// SetVisible reports whether the element is on screen. Going off screen
// pauses without touching the intent; coming back resumes if the intent is
// still playing.
func (p *Player) SetVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hidden == !visible {
		return
	}
	p.hidden = !visible
	if p.state == Idle {
		return
	}
	if p.hidden {
		if p.state == Playing {
			p.media.Pause()
			p.state = Paused
		}
		return
	}
	if p.playing {
		p.start()
	}
}

// Rewind pauses and moves the position back to the start.
func (p *Player) Rewind() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	if p.state == Idle {
		return
	}
	p.media.Pause()
	p.media.Seek(0)
	p.state = Paused
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.media.SetMuted(muted)
}

func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.media.SetMuted(p.muted)
	return p.muted
}

func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop == loop {
		return
	}
	p.loop = loop
	p.media.SetLoop(loop)
}

// Unmount stops the element and forgets all per-view state.
func (p *Player) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Playing {
		p.media.Pause()
	}
	p.state = Idle
	p.source = ""
	p.playing = false
	p.hidden = false
}

func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Snapshot() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PlaybackState{
		Source:  p.source,
		Playing: p.playing,
		State:   p.state,
		Muted:   p.muted,
		Visible: !p.hidden,
	}
}

func (p *Player) setPlaying(desired bool) {
	p.playing = desired
	if p.state == Idle {
		return
	}
	if desired {
		p.start()
		return
	}
	p.media.Pause()
	p.state = Paused
}

func (p *Player) load(source string) {
	p.source = source
	p.state = Loading
	p.media.Load(source)
	p.media.Seek(0)
}

// start issues a play request unless the element is off screen, in which
// case it waits paused for SetVisible(true). Rejections are logged only.
func (p *Player) start() {
	if p.hidden {
		p.state = Paused
		return
	}
	p.state = Playing
	if err := p.media.Play(); err != nil {
		p.logger.Warn("playback request rejected",
			"source", p.source,
			"muted", p.muted,
			"error", err,
		)
	}
}
