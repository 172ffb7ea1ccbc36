// Package display is the frame buffer of the 10x12 LED matrix.
//
// A Display owns one working buffer of RGB pixels. Callers draw into it with
// the shape and text primitives and then call Show to push the frame, scaled
// by an intensity, to the LED strip.
//
// Every public operation takes the display mutex for its whole duration, so
// one Display can be shared between goroutines. The handles returned by At
// and AtIndex bypass the mutex.
//
// Coordinates outside the matrix are clipped silently; unknown runes draw the
// font's fallback glyph; negative sizes draw nothing.
package display
