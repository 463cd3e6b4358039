package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// canonicalJSON parses an error body and prints it back compactly, the way a
// browser would after JSON.parse and JSON.stringify: key order kept, duplicate
// keys collapsed onto their first position, numbers and strings re-encoded.
// Bodies that are empty or not a single JSON value become "{}".
func canonicalJSON(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	out, err := readValue(dec)
	if err != nil {
		return emptyBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return emptyBody
	}
	return out
}

func readValue(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return "", fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return quote(t), nil
	case json.Number:
		return formatJSNumber(string(t)), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "null", nil
	}
	return "", fmt.Errorf("unexpected token %v", tok)
}

func readObject(dec *json.Decoder) (string, error) {
	var keys []string
	values := map[string]string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		key, ok := tok.(string)
		if !ok {
			return "", fmt.Errorf("object key %v is not a string", tok)
		}
		value, err := readValue(dec)
		if err != nil {
			return "", err
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(key))
		sb.WriteByte(':')
		sb.WriteString(values[key])
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

func readArray(dec *json.Decoder) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; dec.More(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		value, err := readValue(dec)
		if err != nil {
			return "", err
		}
		sb.WriteString(value)
	}
	if _, err := dec.Token(); err != nil {
		return "", err
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

// formatJSNumber prints a JSON number literal the way JavaScript would after
// parsing it as a double. Literals that overflow become null.
func formatJSNumber(lit string) string {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "null"
	}
	if math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// quote escapes only what JSON requires, leaving non-ASCII and HTML
// characters literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
