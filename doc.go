// Package caption renders word-synchronized animated subtitles.
//
// # Overview
//
// A [Compositor] is bound to one word list, one caption style and one
// target resolution. For any query time it finds the active display window
// and the word being spoken, renders the window with the style's effect and
// places the result on a transparent canvas inside the platform safe area.
//
// # Quick Start
//
//	import "github.com/gogpu/caption"
//
//	tr, _ := transcript.Load("words.json")
//	cat, _ := style.LoadCatalog("styles.json")
//	s, _ := cat.Get("neon_pulse")
//
//	c, err := caption.New(tr.Words, s, caption.WithResolution(1080, 1920))
//	if err != nil {
//		log.Fatal(err)
//	}
//	img := c.Render(1.25) // nil when no subtitle is visible
//
// # Concurrency
//
// A Compositor is immutable after New and every Render call allocates a
// fresh canvas, so one Compositor may render any number of frames
// concurrently. [Compositor.RenderFrames] does exactly that.
//
// # Failure semantics
//
// Rendering never fails. A missing font falls back to the built-in face and
// a missing effect parameter takes its documented default. An empty word
// list, or a time with no active window, renders no subtitle.
//
// # Packages
//
//   - style: caption style descriptors and catalogs
//   - effect: one renderer per effect family
//   - typeface: font resolution, shaping and glyph rasterization
//   - canvas: safe areas, downscaling and placement
//   - transcript: word timestamp files
package caption

// Version is the current version of the library.
const Version = "0.3.0"
