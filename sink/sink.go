// Package sink delivers the output of a finished run to the host.
package sink

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/tapevm/machine"
)

const (
	DEFAULT_CAPACITY = 1 << 18 // Default output buffer size, in bytes.

	INVALID_UTF8 = "(Invalid Utf-8):\n" // Prefix of a lossy rendering.
)

// Copy copies the output into dst in the order it was written, and returns
// the number of bytes copied. If dst is too small, nothing is copied and
// the error is an *ErrCapacity.
func Copy(dst []byte, out machine.Output) (n int, err error) {
	if out.Len() > len(dst) {
		err = &ErrCapacity{Need: out.Len(), Have: len(dst)}
		return
	}

	for value := range out.All() {
		dst[n] = value
		n++
	}

	return
}

// Render returns data as text. Valid UTF-8 is returned as-is; anything else
// is rendered lossily after an INVALID_UTF8 header, and valid is false.
// data itself is never modified.
func Render(data []byte) (text string, valid bool) {
	if utf8.Valid(data) {
		return string(data), true
	}

	return INVALID_UTF8 + strings.ToValidUTF8(string(data), string(utf8.RuneError)), false
}

// Emit writes data to w, either exactly (raw) or as rendered text.
func Emit(w io.Writer, data []byte, raw bool) (err error) {
	if !raw {
		text, _ := Render(data)
		_, err = io.WriteString(w, text)
		return
	}

	_, err = w.Write(data)

	return
}
