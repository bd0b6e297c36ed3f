package geo

import (
	"errors"
	"fmt"
)

var ErrUnknownLocation = errors.New("unknown location")

type BuildingKind int

const (
	Teaching BuildingKind = iota
	Hall                  // Dining hall
	Dormitory
)

var buildingKinds = map[string]BuildingKind{
	"teaching":  Teaching,
	"hall":      Hall,
	"dormitory": Dormitory,
}

func ParseBuildingKind(kind string) (BuildingKind, error) {
	parsed, ok := buildingKinds[kind]
	if !ok {
		return 0, fmt.Errorf("%w: building kind \"%v\"", ErrUnknownLocation, kind)
	}
	return parsed, nil
}

type Campus struct {
	Code string
	Name string

	shuttle map[string]float64 // Minutes by shuttle to other campuses, keyed by destination code
}

func (campus *Campus) String() string {
	return campus.Code + campus.Name
}

// ShuttleTime returns the minutes it takes to get from campus to other. The table is directional on purpose.
func (campus *Campus) ShuttleTime(other *Campus) float64 {
	if campus == other {
		return 0
	}
	return campus.shuttle[other.Code]
}

type Building struct {
	Code      string
	Name      string
	Kind      BuildingKind
	Campus    *Campus
	Longitude float64
	Latitude  float64

	nearestHall *Building
}

func (building *Building) String() string {
	return building.Name
}

// NearestHall returns the dining hall closest to the building (the building itself for halls)
func (building *Building) NearestHall() *Building {
	return building.nearestHall
}

type Room struct {
	Code     string
	Building *Building
	Floor    int
	Number   string
}

func (room *Room) String() string {
	return room.Code
}

func (room *Room) NearestHall() *Building {
	return room.Building.nearestHall
}
