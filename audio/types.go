package audio

import "errors"

// SoundType represents input feedback sounds
type SoundType int

const (
	SoundReject   SoundType = iota // Keystroke refused: field full or disabled
	SoundComplete                  // Field transitioned into complete
	SoundClear                     // Field cleared through the handle
	soundTypeCount
)

// String returns the config key for the sound
func (s SoundType) String() string {
	switch s {
	case SoundReject:
		return "reject"
	case SoundComplete:
		return "complete"
	case SoundClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
