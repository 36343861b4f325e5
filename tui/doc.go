// Package tui hosts codeinput engines on a tcell screen.
//
// Core abstraction is Region, a rectangle of screen cells with clipping.
// Renderers (CodeBoxes, CodeLine) are immediate-mode: they read engine state
// and draw. Fields (BoxField, LineField) translate tcell events, including
// bracketed paste, into engine operations. Form stacks fields, routes focus and
// flushes the post-render queue after every frame.
//
// Usage pattern:
//
//	frame := &codeinput.Deferred{}
//	otp, _ := tui.NewBoxField(cfg, tui.DefaultBoxOpts(), codeinput.WithScheduler(frame))
//	form := tui.NewForm(frame)
//	form.Add("One-time code", otp)
//	form.Mount()
//	form.Render(screen)
package tui
