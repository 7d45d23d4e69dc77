// Package typeface resolves, parses, shapes and rasterizes fonts for caption
// rendering.
//
// Fonts are located through an injected [Resolver]; nothing in this package
// searches hard-coded system paths. A [Cache] turns a (family, size) request
// into a ready [Face], falling back to the built-in Go Bold face when the
// family cannot be resolved or parsed. Fallbacks are logged once per family.
//
//	fonts := typeface.NewCache(typeface.DirResolver{Dirs: []string{"fonts"}})
//	face := fonts.Face("Montserrat-Bold", 72)
//	w := face.Advance("hello")
//
// Faces are immutable and safe for concurrent use.
package typeface
