// Package codeinput implements the segmentation and formatting engines behind
// fixed-length code inputs (OTPs, PINs, card numbers).
//
// Two engines share one contract: a logical value of at most NumberOfChars
// characters, optional separator decoration, OnChange/OnComplete callbacks and
// an imperative Handle (Value, SetValue, Clear, Focus).
//
//   - CellEngine: box style, one grapheme per cell with focus choreography
//   - MaskEngine: line style, one field whose display string carries separator
//     glyphs while the logical value stays separator-free
//
// Engines are UI-agnostic. Focus and caret moves that depend on the rendered
// frame are requested through a Scheduler and run after the host commits the
// next frame.
//
// Characters are extended grapheme clusters, so "é" or a flag emoji occupy one
// cell and count once toward NumberOfChars.
package codeinput
