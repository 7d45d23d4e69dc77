// Package style describes caption styles: typography, colors, the effect
// family and its parameters, and layout rules.
//
// A Style is plain data. Every lookup of a color or effect parameter goes
// through [Style.Color], [Style.Float] and friends, which fall back to the
// per-effect defaults table in defaults.go when the descriptor omits a key.
// Missing keys never produce errors.
//
// Styles are usually loaded from a catalog file keyed by style name:
//
//	cat, err := style.LoadCatalog("styles.json")
//	if err != nil {
//		return err
//	}
//	s, err := cat.Get("neon_pulse") // *UnknownStyleError lists valid names
package style
