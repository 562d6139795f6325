// Package hexdump renders byte ranges read out of a target process for
// debug traces, keyed by their target-space address.
package hexdump

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options controls the dump format.
type Options struct {
	// BytesPerLine is the number of bytes per output line.
	BytesPerLine int

	// BaseAddress is the target address of data[0], shown in the offset
	// column.
	BaseAddress uint64

	// ShowASCII appends the printable-character column.
	ShowASCII bool

	// Color enables ANSI coloring of the offset column and dims zero bytes.
	Color bool

	// MaxLines truncates the dump, 0 for no limit.
	MaxLines int
}

// DefaultOptions returns the format used by the debug traces.
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
		Color:        false,
		MaxLines:     0,
	}
}

// Dump renders data with the default format, addressed from base.
func Dump(data []byte, base uint64) string {
	opts := DefaultOptions()
	opts.BaseAddress = base
	return DumpWith(data, opts)
}

// DumpWith renders data with explicit options.
func DumpWith(data []byte, opts Options) string {
	var buf bytes.Buffer
	DumpToWriter(&buf, data, opts)
	return buf.String()
}

// DumpToWriter writes the dump to w.
func DumpToWriter(w io.Writer, data []byte, opts Options) {
	if opts.BytesPerLine <= 0 {
		opts.BytesPerLine = 16
	}

	lines := 0
	for off := 0; off < len(data); off += opts.BytesPerLine {
		if opts.MaxLines > 0 && lines >= opts.MaxLines {
			fmt.Fprintf(w, "... %d more bytes\n", len(data)-off)
			return
		}

		end := off + opts.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]

		addr := fmt.Sprintf("%016X", opts.BaseAddress+uint64(off))
		if opts.Color {
			addr = coloransi.Foreground(coloransi.Cyan, addr)
		}

		var hexCol strings.Builder
		for i := 0; i < opts.BytesPerLine; i++ {
			if i >= len(line) {
				hexCol.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%02X ", line[i])
			if opts.Color && line[i] == 0 {
				cell = coloransi.Foreground(coloransi.BrightBlack, cell)
			}
			hexCol.WriteString(cell)
		}

		if opts.ShowASCII {
			var ascii strings.Builder
			for _, b := range line {
				if unicode.IsPrint(rune(b)) && b < 0x80 {
					ascii.WriteByte(b)
				} else {
					ascii.WriteByte('.')
				}
			}
			fmt.Fprintf(w, "%s  %s |%s|\n", addr, hexCol.String(), ascii.String())
		} else {
			fmt.Fprintf(w, "%s  %s\n", addr, hexCol.String())
		}
		lines++
	}
}
