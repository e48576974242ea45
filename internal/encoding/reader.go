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

// NewUTF8Reader wraps r so its content comes out as UTF-8 regardless of how
// the source file was exported. Fixture CSVs tend to arrive from
// spreadsheets in whatever encoding the exporting machine used.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if dec, bomLen := bomDecoder(head); dec != nil {
		_, _ = br.Discard(bomLen)
		return transform.NewReader(br, dec.NewDecoder()), nil
	} else if bomLen > 0 {
		// UTF-8 BOM: strip it and pass through.
		_, _ = br.Discard(bomLen)
		return br, nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return transform.NewReader(br, sniffDecoder(head)), nil
}

// bomDecoder reports the decoder for a leading byte-order mark. A nil
// decoder with a positive length means a UTF-8 BOM.
func bomDecoder(head []byte) (encoding.Encoding, int) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return nil, 3
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), 2
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2
	}

	return nil, 0
}

// sniffDecoder guesses the charset of BOM-less non-UTF-8 content.
// Windows-1252 is the fallback; it is what legacy spreadsheet exports
// almost always turn out to be.
func sniffDecoder(head []byte) *encoding.Decoder {
	detector := chardet.NewTextDetector()

	if result, err := detector.DetectBest(head); err == nil {
		switch result.Charset {
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder()
		case "ISO-8859-15":
			return charmap.ISO8859_15.NewDecoder()
		}
	}

	return charmap.Windows1252.NewDecoder()
}
