// Package filter implements the mask operations behind caption effects:
// separable Gaussian blur, distance-field dilation (strokes and halos) and
// layered halo accumulation.
//
// Every function works on *image.Alpha coverage masks and allocates its
// result; inputs are never modified.
package filter
