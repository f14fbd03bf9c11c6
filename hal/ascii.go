package hal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// asciiRamp runs from dark to bright.
const asciiRamp = " .:-=+*#%@"

// TerminalWidth returns the column count of w if it is a terminal, or 80.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

// DumpASCII writes fb as text, cols characters wide. Each character
// covers a cell twice as tall as it is wide and shows the cell's mean
// brightness.
func DumpASCII(w io.Writer, fb Framebuffer, cols int) error {
	if fb.Format() != PixelFormatRGB565 {
		return fmt.Errorf("unsupported pixel format %d", fb.Format())
	}
	fw, fh := fb.Width(), fb.Height()
	if fw <= 0 || fh <= 0 {
		return nil
	}
	if cols <= 0 || cols > fw {
		cols = fw
	}
	cellW := float64(fw) / float64(cols)
	cellH := cellW * 2
	rows := int(float64(fh) / cellH)
	if rows < 1 {
		rows = 1
	}

	buf, stride := fb.Buffer(), fb.StrideBytes()
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, cols+1)
	for row := 0; row < rows; row++ {
		y0, y1 := span(row, cellH, fh)
		line = line[:0]
		for col := 0; col < cols; col++ {
			x0, x1 := span(col, cellW, fw)
			var sum, n uint32
			for y := y0; y < y1; y++ {
				off := y * stride
				for x := x0; x < x1; x++ {
					i := off + x*2
					sum += uint32(luma565(uint16(buf[i]) | uint16(buf[i+1])<<8))
					n++
				}
			}
			level := 0
			if n > 0 {
				level = int(sum/n) * len(asciiRamp) / 256
			}
			line = append(line, asciiRamp[level])
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// span returns the pixel range [lo, hi) of cell i, never empty.
func span(i int, size float64, limit int) (lo, hi int) {
	lo = int(float64(i) * size)
	hi = int(float64(i+1) * size)
	if hi > limit {
		hi = limit
	}
	if hi <= lo {
		hi = lo + 1
	}
	if lo >= limit {
		lo, hi = limit-1, limit
	}
	return lo, hi
}
