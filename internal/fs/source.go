// Package fs loads markdown sources from disk or stdin and turns them into
// normalized UTF-8 text.
package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// MaxDocumentSize caps how much of a source is read.
const MaxDocumentSize = 8 << 20

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

var (
	// ErrBinaryContent is returned when a source does not look like text.
	ErrBinaryContent = zerr.New("content is not text")
	// ErrTooLarge is returned when a source exceeds MaxDocumentSize.
	ErrTooLarge = zerr.New("document too large")
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bmp": {}, ".exe": {}, ".gif": {}, ".gz": {},
	".ico": {}, ".jpeg": {}, ".jpg": {}, ".pdf": {}, ".png": {}, ".so": {},
	".tar": {}, ".wasm": {}, ".webp": {}, ".zip": {},
}

// Source is a loaded document.
type Source struct {
	// Name is the path it came from, or "-" for stdin.
	Name string
	Text string
}

// ReadSource loads path, or stdin when path is "" or "-".
func ReadSource(path string, stdin io.Reader) (Source, error) {
	name := path
	var r io.Reader
	if path == "" || path == "-" {
		name = "-"
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Source{}, zerr.With(zerr.Wrap(err, "open document"), "path", path)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	content, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return Source{}, zerr.With(zerr.Wrap(err, "read document"), "path", name)
	}
	if len(content) > MaxDocumentSize {
		return Source{}, zerr.With(zerr.Wrap(ErrTooLarge, name), "limit", MaxDocumentSize)
	}
	if !IsText(name, content) {
		return Source{}, zerr.With(zerr.Wrap(ErrBinaryContent, name), "path", name)
	}
	return Source{Name: name, Text: NormalizeText(content)}, nil
}

// IsText reports whether content looks like text. Obvious binary file
// extensions are rejected before sniffing.
func IsText(path string, content []byte) bool {
	if path != "" && path != "-" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return false
		}
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}
	if detectUnicodeEncoding(sample) != encodingUnknown {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// NormalizeText decodes BOM-marked UTF-8 and UTF-16 content, folds CRLF
// line endings and returns NFC text, so composed and decomposed accents
// measure the same.
func NormalizeText(content []byte) string {
	var text string
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		text = string(content[3:])
	case encodingUTF16LE:
		text = decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		text = decodeUTF16(content, unicode.BigEndian)
	default:
		text = string(content)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return norm.NFC.String(text)
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
