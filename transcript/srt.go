package transcript

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/caption"
)

// WriteSRT writes one SRT cue per window.
func WriteSRT(w io.Writer, windows []caption.Window) error {
	bw := bufio.NewWriter(w)
	for i, win := range windows {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n", i+1, timestamp(win.Start), timestamp(win.End), win.Text())
	}
	return bw.Flush()
}

// timestamp formats seconds as HH:MM:SS,mmm. Negative times clamp to zero.
func timestamp(sec float64) string {
	ms := int64(math.Round(max(sec, 0) * 1000))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
