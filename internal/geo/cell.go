package geo

import "fmt"

// Features is the fixed set of feature slots of a cell. It is an array, so
// assigning or copying a Features value never shares storage.
type Features [FeatureCount]bool

// Count returns the number of enabled slots.
func (f Features) Count() int {
	n := 0
	for _, on := range f {
		if on {
			n++
		}
	}
	return n
}

// Enabled lists the enabled slots in ascending order.
func (f Features) Enabled() []FeatureID {
	ids := make([]FeatureID, 0, f.Count())
	for i, on := range f {
		if on {
			ids = append(ids, FeatureID(i))
		}
	}
	return ids
}

// Cell is one grid cell: a terrain type plus its feature slots.
type Cell struct {
	Type     GeoType
	Features Features
}

// Default returns an Air cell with no features.
func Default() Cell {
	return Cell{Type: Air}
}

// NewCell returns a cell of the given type with no features.
func NewCell(t GeoType) Cell {
	return Cell{Type: t}
}

// Clone returns a deep copy of c.
func (c Cell) Clone() Cell {
	out := Cell{Type: c.Type}
	copy(out.Features[:], c.Features[:])
	return out
}

// Equal reports structural equality.
func (c Cell) Equal(other Cell) bool {
	return c.Type == other.Type && c.Features == other.Features
}

// IsAir reports whether the terrain type is Air.
func (c Cell) IsAir() bool {
	return c.Type == Air
}

// Has reports whether feature id is enabled. Panics on an invalid id.
func (c Cell) Has(id FeatureID) bool {
	mustValid(id)
	return c.Features[id]
}

// WithType returns a copy of c with the terrain type replaced.
func (c Cell) WithType(t GeoType) Cell {
	out := c.Clone()
	out.Type = t
	return out
}

// WithFeature returns a copy of c with slot id set to value.
// Enabling the shortcut entrance also turns the cell into Air.
func (c Cell) WithFeature(id FeatureID, value bool) Cell {
	mustValid(id)
	out := c.Clone()
	out.Features[id] = value
	if id == FeatureShortcutEntrance && value {
		out.Type = Air
	}
	return out
}

// Toggle flips slot id, applying the same rule as WithFeature.
func (c Cell) Toggle(id FeatureID) Cell {
	return c.WithFeature(id, !c.Has(id))
}

func (c Cell) String() string {
	if n := c.Features.Count(); n > 0 {
		return fmt.Sprintf("%s%v", c.Type, c.Features.Enabled())
	}
	return c.Type.String()
}

func mustValid(id FeatureID) {
	if !id.Valid() {
		panic(fmt.Sprintf("geo: feature id %d out of range [0, %d)", int(id), FeatureCount))
	}
}
