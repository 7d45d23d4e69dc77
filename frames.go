package caption

import (
	"context"
	"image"
	"math"

	"github.com/gogpu/caption/internal/cache"
	"github.com/gogpu/caption/internal/parallel"
)

// framesPerWorker is how many frames each worker gets per batch.
const framesPerWorker = 4

// recentFrames bounds the frames kept for reuse by RenderFrames.
const recentFrames = 64

// FrameCount returns the number of frames RenderFrames emits at fps.
func (c *Compositor) FrameCount(fps float64) int {
	if fps <= 0 || c.duration <= 0 {
		return 0
	}
	return int(math.Floor(c.duration*fps)) + 1
}

// RenderFrames renders every frame in [0, Duration] at fps on workers
// goroutines and calls emit in frame order from the calling goroutine.
// Frames with no subtitle are emitted with a nil Image. Frames with equal
// keys share one Image, which emit must not modify.
//
// Rendering stops at the first emit error or when ctx is done, checked
// between batches. workers <= 0 uses GOMAXPROCS.
func (c *Compositor) RenderFrames(ctx context.Context, fps float64, workers int, emit func(index int, f Frame) error) error {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return ErrInvalidFPS
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	recent := cache.New[FrameKey, Frame](recentFrames)
	total := c.FrameCount(fps)
	batch := pool.Workers() * framesPerWorker

	for first := 0; first < total; first += batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(batch, total-first)
		keys := make([]FrameKey, n)
		visible := make([]bool, n)

		// One render per distinct key not already cached.
		ready := make(map[FrameKey]*Frame)
		var work []func()
		for i := range n {
			t := float64(first+i) / fps
			key, ok := c.FrameKey(t)
			keys[i], visible[i] = key, ok
			if !ok {
				continue
			}
			if _, seen := ready[key]; seen {
				continue
			}
			if f, hit := recent.Get(key); hit {
				ready[key] = &f
				continue
			}
			slot := new(Frame)
			ready[key] = slot
			work = append(work, func() {
				*slot, _ = c.RenderFrame(t)
			})
		}
		pool.ExecuteAll(work)
		for key, f := range ready {
			recent.Set(key, *f)
		}

		for i := range n {
			t := float64(first+i) / fps
			f := Frame{Time: t, Window: -1, Highlight: -1}
			if visible[i] {
				f = *ready[keys[i]]
				f.Time = t
			}
			if err := emit(first+i, f); err != nil {
				return err
			}
		}
	}

	s := recent.Stats()
	Logger().Debug("caption: frames rendered", "frames", total, "hits", s.Hits, "misses", s.Misses, "hit_rate", s.HitRate())
	return nil
}

// Blank returns a transparent canvas of the compositor's size.
func (c *Compositor) Blank() *image.RGBA {
	return image.NewRGBA(c.area.Bounds())
}
