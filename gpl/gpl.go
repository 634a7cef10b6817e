// Package gpl decodes and encodes GIMP's palette (.gpl) format: a
// plain-text list of named colors.
package gpl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadMagic means the file did not begin with the "GIMP Palette" header line.
var ErrBadMagic = errors.New("gpl: bad magic")

// Color is one palette entry: an RGB triple with an optional name.
type Color struct {
	R, G, B int
	Name    string // empty if unnamed
}

// Palette is a named list of colors, displayed in GIMP in a grid of
// the given column width.
type Palette struct {
	Name    string
	Columns int
	Colors  []Color
}

// Decode reads one .gpl palette from data.
func Decode(data []byte) (*Palette, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return nil, fmt.Errorf("gpl: empty file")
	}
	if strings.TrimSpace(scanner.Text()) != "GIMP Palette" {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, scanner.Text())
	}
	p := &Palette{Columns: 16}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "#" {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := cutPrefix(line, "Name:"); ok {
			p.Name = strings.TrimSpace(rest)
			continue
		}
		if rest, ok := cutPrefix(line, "Columns:"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("gpl: bad Columns value: %w", err)
			}
			p.Columns = n
			continue
		}
		// An unrecognized header-ish line before the "#" separator is
		// tolerated and skipped, matching real-world files that add
		// extra metadata fields GIMP itself ignores.
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("gpl: bad red component %q: %w", fields[0], err)
		}
		g, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("gpl: bad green component %q: %w", fields[1], err)
		}
		b, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("gpl: bad blue component %q: %w", fields[2], err)
		}
		c := Color{R: r, G: g, B: b}
		if len(fields) > 3 {
			c.Name = strings.Join(fields[3:], " ")
		}
		p.Colors = append(p.Colors, c)
	}
	return p, scanner.Err()
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return s[len(prefix):], true
}

// Encode renders the palette back to its .gpl text form.
func (p *Palette) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString("GIMP Palette\n")
	fmt.Fprintf(&buf, "Name: %s\n", p.Name)
	fmt.Fprintf(&buf, "Columns: %d\n", p.Columns)
	buf.WriteString("#\n")
	for _, c := range p.Colors {
		fmt.Fprintf(&buf, "%3d %3d %3d", c.R, c.G, c.B)
		if c.Name != "" {
			buf.WriteByte('\t')
			buf.WriteString(c.Name)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
