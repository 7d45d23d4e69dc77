// Package canvas places caption bitmaps onto a video-sized canvas.
//
// A [SafeArea] is derived from the canvas size and a safe-zone flag. It
// defines the horizontal band captions must stay inside and the anchor
// point for each vertical position. [Fit] downscales a bitmap to the band
// width, and [Place] composites it centered on an anchor, clamped into the
// band horizontally and into the canvas vertically.
package canvas
