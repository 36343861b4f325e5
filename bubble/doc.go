// Package bubble hosts code inputs inside bubbletea programs.
//
// Models own their engines and translate engine callbacks into messages:
// ChangeMsg on every committed edit, CompleteMsg on each transition into the
// complete state and RejectMsg when a keystroke is refused. Caret placement
// the engines defer until after render is delivered as a frameMsg command,
// which bubbletea processes after the View for the current update is drawn.
package bubble
