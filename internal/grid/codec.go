package grid

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/leditor/internal/geo"
)

const regionHeader = "region"

// ErrMalformedRegion is wrapped by every ParseRegion failure.
var ErrMalformedRegion = errors.New("malformed region text")

// MarshalText renders the region as plain text:
//
//	region W H
//	<H rows of W glyphs>
//	@x,y:id,id,...   (one line per cell with features)
func (r *Region) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %d %d\n", regionHeader, r.width, r.height)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			b.WriteRune(r.cells[y*r.width+x].Type.Glyph())
		}
		b.WriteByte('\n')
	}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			ids := r.cells[y*r.width+x].Features.Enabled()
			if len(ids) == 0 {
				continue
			}
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.Itoa(int(id))
			}
			fmt.Fprintf(&b, "@%d,%d:%s\n", x, y, strings.Join(parts, ","))
		}
	}
	return b.Bytes(), nil
}

// UnmarshalText replaces r with the region described by text.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(text)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// ParseRegion decodes the MarshalText format.
func ParseRegion(text []byte) (*Region, error) {
	sc := bufio.NewScanner(bytes.NewReader(text))
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedRegion)
	}
	var width, height int
	header := strings.TrimSpace(sc.Text())
	if n, err := fmt.Sscanf(header, regionHeader+" %d %d", &width, &height); err != nil || n != 2 {
		return nil, fmt.Errorf("%w: bad header %q", ErrMalformedRegion, header)
	}
	r, err := NewRegion(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRegion, err)
	}

	for y := 0; y < height; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedRegion, height, y)
		}
		row := []rune(strings.TrimRight(sc.Text(), "\r"))
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedRegion, y, len(row), width)
		}
		for x, g := range row {
			t, ok := geo.GeoTypeFromGlyph(g)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %d,%d", ErrMalformedRegion, g, x, y)
			}
			r.cells[y*width+x].Type = t
		}
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := r.parseFeatureLine(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading region text: %w", err)
	}
	return r, nil
}

func (r *Region) parseFeatureLine(line string) error {
	if !strings.HasPrefix(line, "@") {
		return fmt.Errorf("%w: unexpected line %q", ErrMalformedRegion, line)
	}
	coords, list, ok := strings.Cut(line[1:], ":")
	if !ok {
		return fmt.Errorf("%w: feature line %q missing ':'", ErrMalformedRegion, line)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return fmt.Errorf("%w: feature line %q has bad coordinates", ErrMalformedRegion, line)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || !r.inBounds(x, y) {
		return fmt.Errorf("%w: feature line %q has bad coordinates", ErrMalformedRegion, line)
	}
	for _, s := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || !geo.FeatureID(n).Valid() {
			return fmt.Errorf("%w: bad feature id %q", ErrMalformedRegion, s)
		}
		r.cells[y*r.width+x].Features[n] = true
	}
	return nil
}
