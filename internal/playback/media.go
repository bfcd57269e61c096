// Package playback keeps media elements in step with what the visitor asked
// for: play/pause intent, the current source, on-screen visibility, hover
// previews and the auto-hiding controls overlay.
//
// Every media element is driven by one Player. The element itself is a
// collaborator behind the Media interface, so the same rules back the main
// player and every preview card.
package playback

import (
	"errors"
	"fmt"
	"time"
)

// ErrPlaybackRejected is wrapped by Media implementations when the host
// refuses to start playback (autoplay policy, decode failure).
var ErrPlaybackRejected = errors.New("playback request rejected")

// HideDelay is how long the controls overlay stays visible after the
// pointer leaves it.
const HideDelay = 1000 * time.Millisecond

// VisibilityThreshold is the fraction of an autoplay video that must be on
// screen before it plays.
const VisibilityThreshold = 0.5

type Media interface {
	// Play requests playback. The request may be refused.
	Play() error
	Pause()
	// Load replaces the source and discards anything buffered for the old one.
	Load(src string)
	Seek(seconds float64)
	SetMuted(muted bool)
	SetLoop(loop bool)
}

type State int

const (
	Idle State = iota
	Loading
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PlaybackState is a point-in-time copy of a player.
type PlaybackState struct {
	Source  string `json:"source"`
	Playing bool   `json:"playing"`
	State   State  `json:"-"`
	Muted   bool   `json:"muted"`
	Visible bool   `json:"visible"`
}
