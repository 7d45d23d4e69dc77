package style

// Builtin returns a catalog with one style per effect type, named after the
// effect and using every default.
func Builtin() *Catalog {
	cat := NewCatalog()
	for _, e := range EffectTypes() {
		cat.Add(e.String(), &Style{
			Description: "default " + e.String() + " captions",
			Effect:      e,
		})
	}
	return cat
}
