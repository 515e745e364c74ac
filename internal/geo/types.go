// Package geo defines the cell model of the level geometry: terrain types,
// stackable features and the Cell value that combines them.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// GeoType is the terrain kind of a cell. Values match the level file format.
type GeoType int

const (
	Air              GeoType = 0
	Solid            GeoType = 1
	SlopeNE          GeoType = 2
	SlopeNW          GeoType = 3
	SlopeES          GeoType = 4
	SlopeSW          GeoType = 5
	Platform         GeoType = 6
	ShortcutEntrance GeoType = 7
	Glass            GeoType = 9
)

var geoTypeNames = map[GeoType]string{
	Air:              "air",
	Solid:            "solid",
	SlopeNE:          "slope-ne",
	SlopeNW:          "slope-nw",
	SlopeES:          "slope-es",
	SlopeSW:          "slope-sw",
	Platform:         "platform",
	ShortcutEntrance: "shortcut-entrance",
	Glass:            "glass",
}

// GeoTypes lists every valid terrain kind in format order.
var GeoTypes = []GeoType{Air, Solid, SlopeNE, SlopeNW, SlopeES, SlopeSW, Platform, ShortcutEntrance, Glass}

// Valid reports whether t is a known terrain kind.
func (t GeoType) Valid() bool {
	_, ok := geoTypeNames[t]
	return ok
}

func (t GeoType) String() string {
	if name, ok := geoTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("geo(%d)", int(t))
}

// ParseGeoType resolves a terrain name (case-insensitive) or its numeric id.
func ParseGeoType(s string) (GeoType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range geoTypeNames {
		if name == s || fmt.Sprint(int(t)) == s {
			return t, nil
		}
	}
	return Air, fmt.Errorf("unknown geo type '%s'", s)
}

// FeatureCount is the fixed number of feature slots per cell.
const FeatureCount = 22

// FeatureID indexes a feature slot. Slots without a name are valid but unused.
type FeatureID int

const (
	HorizontalPole          FeatureID = 1
	VerticalPole            FeatureID = 2
	Bathive                 FeatureID = 3
	FeatureShortcutEntrance FeatureID = 4
	ShortcutPath            FeatureID = 5
	RoomEntrance            FeatureID = 6
	DragonDen               FeatureID = 7
	PlaceRock               FeatureID = 9
	PlaceSpear              FeatureID = 10
	CrackedTerrain          FeatureID = 11
	ForbidFlyChains         FeatureID = 12
	GarbageWormHole         FeatureID = 13
	Waterfall               FeatureID = 18
	WackAMoleHole           FeatureID = 19
	WormGrass               FeatureID = 20
	ScavengerHole           FeatureID = 21
)

var featureNames = map[FeatureID]string{
	HorizontalPole:          "pole-h",
	VerticalPole:            "pole-v",
	Bathive:                 "bathive",
	FeatureShortcutEntrance: "shortcut-entrance",
	ShortcutPath:            "shortcut-path",
	RoomEntrance:            "room-entrance",
	DragonDen:               "den",
	PlaceRock:               "rock",
	PlaceSpear:              "spear",
	CrackedTerrain:          "cracked",
	ForbidFlyChains:         "forbid-fly-chains",
	GarbageWormHole:         "garbage-worm-hole",
	Waterfall:               "waterfall",
	WackAMoleHole:           "wack-a-mole-hole",
	WormGrass:               "worm-grass",
	ScavengerHole:           "scavenger-hole",
}

// Valid reports whether id addresses a feature slot.
func (id FeatureID) Valid() bool {
	return id >= 0 && id < FeatureCount
}

func (id FeatureID) String() string {
	if name, ok := featureNames[id]; ok {
		return name
	}
	return fmt.Sprintf("feature(%d)", int(id))
}

// ParseFeatureID resolves a feature name (case-insensitive) or slot number.
func ParseFeatureID(s string) (FeatureID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, name := range featureNames {
		if name == s {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && FeatureID(n).Valid() {
		return FeatureID(n), nil
	}
	return 0, fmt.Errorf("unknown feature '%s'", s)
}
