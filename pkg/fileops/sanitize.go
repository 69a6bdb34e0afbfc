package fileops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// Everything outside printable ASCII plus tab and newline is stripped.
	// This removes non-ASCII letters too, so sanitization is lossy for
	// non-English text; existing callers depend on the stripped form.
	nonPrintable  = regexp.MustCompile("[^\x20-\x7E\t\n]")
	multiNewlines = regexp.MustCompile(`\n{2,}`)
	spaceRuns     = regexp.MustCompile(`[ \t]+`)
)

// SanitizeContent converts content into a normalized text payload suitable
// for writing.
//
// Conversion picks the first matching rule: maps, slices, arrays, and structs
// are serialized as JSON (two-space indent, or no extra whitespace when
// compact is true; map keys appear in sorted order); strings are used as-is;
// booleans become "true"/"false"; nil becomes "null"; numbers use their
// canonical strconv form; []byte must be valid UTF-8. Any other type fails
// with KindUnsupportedType.
//
// The converted text then has CRLF and lone CR normalized to LF and all
// characters outside printable ASCII (plus tab and newline) stripped. When
// compact is true, runs of blank lines collapse to a single newline, runs of
// spaces and tabs collapse to a single space, and the result is trimmed. A
// result that is empty after trimming fails with KindEmptyContent.
func SanitizeContent(content any, compact bool) (string, error) {
	text, err := convertContent(content, compact)
	if err != nil {
		return "", err
	}

	// Normalize line endings before stripping so a lone CR still becomes
	// a line break instead of vanishing with the control characters.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = nonPrintable.ReplaceAllString(text, "")

	if compact {
		text = multiNewlines.ReplaceAllString(text, "\n")
		text = spaceRuns.ReplaceAllString(text, " ")
		text = strings.TrimSpace(text)
	}

	if strings.TrimSpace(text) == "" {
		return "", newPathError(KindEmptyContent, "", "content is empty after sanitization")
	}

	return text, nil
}

func convertContent(content any, compact bool) (string, error) {
	switch v := content.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case []byte:
		if !utf8.Valid(v) {
			return "", newPathError(KindInvalidEncoding, "", "byte content is not valid UTF-8")
		}
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	rv := reflect.ValueOf(content)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null", nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return encodeJSON(rv.Interface(), compact)
	}

	return "", newPathError(KindUnsupportedType, "",
		fmt.Sprintf("unsupported content type %T", content))
}

func encodeJSON(v any, compact bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // non-ASCII and HTML characters stay literal
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", wrapPathError(KindUnsupportedType, "", "cannot serialize content as JSON", err)
	}
	// Encode appends a trailing newline that json.Marshal would not
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
