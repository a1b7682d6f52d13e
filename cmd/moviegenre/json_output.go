package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResultJSON encodes v with four-space indentation, HTML characters
// left alone and every non-ASCII rune escaped as \uXXXX.
func writeResultJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err := w.Write(asciiEscape(buf.Bytes()))
	return err
}

// asciiEscape rewrites non-ASCII runes and DEL in encoded JSON as \u escapes,
// using surrogate pairs outside the BMP. Input must be valid encoder output,
// so such runes only occur inside strings.
func asciiEscape(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		c := data[0]
		if c < utf8.RuneSelf && c != 0x7f {
			out = append(out, c)
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r >= 0x10000 {
			r -= 0x10000
			out = fmt.Appendf(out, `\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}
