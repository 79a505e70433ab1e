// Package encoding normalizes uploaded catalog files to UTF-8.
// Library book lists arrive from many cataloguing tools, so the input
// may carry a BOM, be UTF-16, or use a legacy Windows charset.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// NewUTF8Reader wraps r in a reader that yields UTF-8 text. Detection
// order: BOM, valid UTF-8 as-is, chardet heuristics, Windows-1252
// fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if dec := utf16Decoder(head); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return transform.NewReader(br, legacyDecoder(head)), nil
}

func utf16Decoder(head []byte) transform.Transformer {
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	}

	return nil
}

// legacyDecoder picks a single-byte charset via chardet, defaulting to
// Windows-1252.
func legacyDecoder(head []byte) transform.Transformer {
	var enc encoding.Encoding = charmap.Windows1252

	result, err := chardet.NewTextDetector().DetectBest(head)
	if err == nil {
		switch result.Charset {
		case "ISO-8859-1", "windows-1252":
			enc = charmap.Windows1252
		case "ISO-8859-2":
			enc = charmap.ISO8859_2
		case "ISO-8859-9":
			enc = charmap.ISO8859_9
		case "ISO-8859-15":
			enc = charmap.ISO8859_15
		}
	}

	return enc.NewDecoder()
}
