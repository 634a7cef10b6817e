// Package gtp decodes and encodes GIMP's tool preset (.gtp) format: a
// Lisp-like parenthesized property list, e.g.
// (gimp-tool-preset "My Preset" (opacity 100) (paint-mode (layer-mode-normal)))
package gtp

import (
	"bytes"
	"fmt"
	"strconv"
)

// Value is one parenthesized form: a type name followed by an ordered
// list of items, each either a bool, a float64, a string, or a nested
// *Value.
type Value struct {
	Type  string
	Items []any
}

// Preset is a tool preset: the top-level forms found in a .gtp file,
// normally a single (gimp-tool-preset ...) form.
type Preset struct {
	Values []*Value
}

// Decode reads one .gtp tool preset from data.
func Decode(data []byte) (*Preset, error) {
	p := &Preset{}
	pos := 0
	for {
		pos = skipWhitespace(data, pos)
		if pos >= len(data) {
			break
		}
		v, next, err := parseForm(data, pos)
		if err != nil {
			return nil, fmt.Errorf("gtp: %w", err)
		}
		p.Values = append(p.Values, v)
		pos = next
	}
	if len(p.Values) == 0 {
		return nil, fmt.Errorf("gtp: no forms found")
	}
	return p, nil
}

func skipWhitespace(data []byte, pos int) int {
	for pos < len(data) {
		switch data[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// parseForm parses one "(type item item ...)" form starting at an
// opening paren and returns the position just past its closing paren.
func parseForm(data []byte, pos int) (*Value, int, error) {
	if pos >= len(data) || data[pos] != '(' {
		return nil, 0, fmt.Errorf("expected '(' at offset %d", pos)
	}
	pos++
	pos = skipWhitespace(data, pos)
	start := pos
	for pos < len(data) && !isWhitespace(data[pos]) && data[pos] != ')' && data[pos] != '(' {
		pos++
	}
	if start == pos {
		return nil, 0, fmt.Errorf("missing form type at offset %d", pos)
	}
	v := &Value{Type: string(data[start:pos])}
	for {
		pos = skipWhitespace(data, pos)
		if pos >= len(data) {
			return nil, 0, fmt.Errorf("unterminated form %q", v.Type)
		}
		switch data[pos] {
		case ')':
			return v, pos + 1, nil
		case '(':
			child, next, err := parseForm(data, pos)
			if err != nil {
				return nil, 0, err
			}
			v.Items = append(v.Items, child)
			pos = next
		case '"':
			s, next, err := parseQuotedString(data, pos)
			if err != nil {
				return nil, 0, err
			}
			v.Items = append(v.Items, s)
			pos = next
		default:
			tok, next := scanToken(data, pos)
			item, err := parseAtom(tok)
			if err != nil {
				return nil, 0, err
			}
			v.Items = append(v.Items, item)
			pos = next
		}
	}
}

func scanToken(data []byte, pos int) (string, int) {
	start := pos
	for pos < len(data) && !isWhitespace(data[pos]) && data[pos] != ')' && data[pos] != '(' {
		pos++
	}
	return string(data[start:pos]), pos
}

func parseQuotedString(data []byte, pos int) (string, int, error) {
	pos++ // opening quote
	start := pos
	for pos < len(data) && data[pos] != '"' {
		pos++
	}
	if pos >= len(data) {
		return "", 0, fmt.Errorf("unterminated string starting at offset %d", start)
	}
	return string(data[start:pos]), pos + 1, nil
}

func parseAtom(tok string) (any, error) {
	switch tok {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unrecognized atom %q", tok)
}

// Encode renders the preset back to its .gtp text form.
func (p *Preset) Encode() []byte {
	var buf bytes.Buffer
	for i, v := range p.Values {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeValue(&buf, v)
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeValue(buf *bytes.Buffer, v *Value) {
	buf.WriteByte('(')
	buf.WriteString(v.Type)
	for _, item := range v.Items {
		buf.WriteByte(' ')
		writeItem(buf, item)
	}
	buf.WriteByte(')')
}

func writeItem(buf *bytes.Buffer, item any) {
	switch x := item.(type) {
	case bool:
		if x {
			buf.WriteString("yes")
		} else {
			buf.WriteString("no")
		}
	case float64:
		buf.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case string:
		buf.WriteByte('"')
		buf.WriteString(x)
		buf.WriteByte('"')
	case *Value:
		writeValue(buf, x)
	default:
		fmt.Fprintf(buf, "%v", x)
	}
}

// String renders a value as nested Lisp text, primarily for debugging.
func (v *Value) String() string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}
