// Package gih decodes and encodes GIMP's image pipe (.gih) format: a
// named, parameterized sequence of brushes used as a single animated
// or randomized brush.
package gih

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/TheHeadlessSourceMan/gimpFormats/gbr"
)

// Pipe is a brush pipe: an ordered list of brushes plus the
// gimp-image-pipe-parameters that control how GIMP cycles through them
// (rank, selection mode, etc.), stored as opaque key/value pairs since
// their meaning is a GIMP runtime concern, not a codec one.
type Pipe struct {
	Name    string
	Params  map[string]string
	Brushes []*gbr.Brush
}

// Decode reads one .gih brush pipe from data: a name line, a parameter
// line ("<n> key:value key:value ..."), then n concatenated .gbr blobs.
func Decode(data []byte) (*Pipe, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("gih: missing name line")
	}
	p := &Pipe{Name: scanner.Text(), Params: map[string]string{}}
	if !scanner.Scan() {
		return nil, fmt.Errorf("gih: missing parameter line")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return nil, fmt.Errorf("gih: empty parameter line")
	}
	numBrushes, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("gih: bad brush count %q: %w", fields[0], err)
	}
	for _, field := range fields[1:] {
		kv := strings.SplitN(field, ":", 2)
		if len(kv) != 2 {
			continue
		}
		p.Params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	// The two text lines are newline-terminated; everything after them
	// in the original byte stream is the concatenated .gbr payload.
	// Recomputed directly from data rather than trusted from bufio's
	// internal position, since scanner.Text() strips the delimiter.
	firstNL := bytes.IndexByte(data, '\n')
	if firstNL < 0 {
		return nil, fmt.Errorf("gih: missing newline after name")
	}
	secondNL := bytes.IndexByte(data[firstNL+1:], '\n')
	if secondNL < 0 {
		return nil, fmt.Errorf("gih: missing newline after parameters")
	}
	consumed := firstNL + 1 + secondNL + 1

	p.Brushes = make([]*gbr.Brush, 0, numBrushes)
	offset := consumed
	for i := 0; i < numBrushes; i++ {
		b, n, err := gbr.DecodeAt(data, offset)
		if err != nil {
			return nil, fmt.Errorf("gih: brush %d: %w", i, err)
		}
		p.Brushes = append(p.Brushes, b)
		offset += n
	}
	return p, nil
}

// Encode renders the pipe back to its .gih byte form.
func (p *Pipe) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(p.Name)
	buf.WriteByte('\n')

	fields := []string{strconv.Itoa(len(p.Brushes))}
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k+":"+p.Params[k])
	}
	buf.WriteString(strings.Join(fields, " "))
	buf.WriteByte('\n')

	for _, b := range p.Brushes {
		buf.Write(b.Encode())
	}
	return buf.Bytes()
}
