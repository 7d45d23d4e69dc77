// Package effect renders one styled caption bitmap per call.
//
// Each effect family is a struct implementing the sealed [Spec] interface and
// carrying only the parameters that family reads. [FromStyle] resolves a
// style descriptor into its Spec once; [Render] dispatches on the concrete
// type with a single exhaustive switch.
//
// Renderers are referentially transparent: the same Spec and Input always
// yield the same pixels. The only time-dependent family is a [Glow] whose
// Pulse is enabled, and even then the output is a pure function of
// Input.Time. Every call allocates its own image; nothing is shared between
// calls except the font cache.
//
// Returned images are sized to their content, not to the canvas.
package effect
