package loader

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf8"

// encodingAliases maps common short names onto WHATWG encoding labels.
var encodingAliases = map[string]string{
	"utf8":    "utf-8",
	"utf16le": "utf-16le",
	"ucs2":    "utf-16le",
	"ucs-2":   "utf-16le",
	"binary":  "iso-8859-1",
	"ascii":   "us-ascii",
}

// LookupEncoding resolves an encoding name. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		label = DefaultEncoding
	}
	if alias, ok := encodingAliases[label]; ok {
		label = alias
	}

	if label == "utf-8" {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// ReadFile reads path and decodes it to a UTF-8 string.
func ReadFile(path, encodingName string) (string, []byte, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", nil, err
	}

	raw, err := os.ReadFile(path) //nolint:gosec // G304: path comes from Discover
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, err := Decode(raw, enc)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return content, raw, nil
}

// Decode converts raw bytes in the given encoding into a UTF-8 string.
// A leading UTF-8 byte order mark is dropped.
func Decode(raw []byte, enc encoding.Encoding) (string, error) {
	if enc == unicode.UTF8 {
		return string(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
