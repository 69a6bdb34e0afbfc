package fileops

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the text encoding used when none is named.
const DefaultEncoding = "utf-8"

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, wrapPathError(KindInvalidEncoding, "",
			fmt.Sprintf("unknown text encoding %q", name), err)
	}
	return enc, nil
}

// encodeText converts sanitized text to bytes in the named encoding. UTF-8 is
// a pass-through; sanitized content is printable ASCII, so in practice any
// supported charset can represent it.
func encodeText(text, name string) ([]byte, error) {
	if isUTF8Name(name) {
		return []byte(text), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, wrapPathError(KindInvalidEncoding, "",
			fmt.Sprintf("cannot encode content as %s", name), err)
	}
	return data, nil
}

// decodeText converts raw file bytes into a string using the named encoding.
// UTF-8 input is validated strictly rather than silently replaced.
func decodeText(data []byte, name string) (string, error) {
	if isUTF8Name(name) {
		if !utf8.Valid(data) {
			return "", newPathError(KindDecodeFailed, "", "content is not valid UTF-8")
		}
		return string(data), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", wrapPathError(KindDecodeFailed, "",
			fmt.Sprintf("cannot decode content as %s", name), err)
	}
	return string(decoded), nil
}
