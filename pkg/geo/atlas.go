package geo

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Atlas owns every campus, building and room of a run. Rooms are created lazily and never evicted.
type Atlas struct {
	campuses      map[string]*Campus
	buildings     map[string]*Building
	buildingCodes []string // Longest first, so that prefix matching picks the most specific building

	mutex sync.Mutex
	rooms map[string]*Room
}

func NewAtlas(layout Layout) (*Atlas, error) {
	atlas := &Atlas{
		campuses:  make(map[string]*Campus, len(layout.Campuses)),
		buildings: make(map[string]*Building, len(layout.Buildings)),
		rooms:     make(map[string]*Room),
	}

	//** Campuses
	for _, spec := range layout.Campuses {
		if _, ok := atlas.campuses[spec.Code]; ok {
			return nil, fmt.Errorf("duplicate campus \"%v\"", spec.Code)
		}
		atlas.campuses[spec.Code] = &Campus{Code: spec.Code, Name: spec.Name, shuttle: make(map[string]float64)}
	}

	//** Shuttles
	for _, spec := range layout.Shuttles {
		from, fromOk := atlas.campuses[spec.From]
		_, toOk := atlas.campuses[spec.To]
		if !fromOk || !toOk {
			return nil, fmt.Errorf("%w: shuttle %v -> %v references an undeclared campus", ErrUnknownLocation, spec.From, spec.To)
		}
		from.shuttle[spec.To] = spec.Minutes
	}
	// Every ordered pair of distinct campuses needs a shuttle time
	for _, from := range atlas.campuses {
		for _, to := range atlas.campuses {
			if _, ok := from.shuttle[to.Code]; from != to && !ok {
				return nil, fmt.Errorf("missing shuttle time from campus \"%v\" to campus \"%v\"", from.Code, to.Code)
			}
		}
	}

	//** Buildings
	for _, spec := range layout.Buildings {
		if _, ok := atlas.buildings[spec.Code]; ok {
			return nil, fmt.Errorf("duplicate building \"%v\"", spec.Code)
		}
		campus, ok := atlas.campuses[spec.Campus]
		if !ok {
			return nil, fmt.Errorf("%w: campus \"%v\" of building \"%v\"", ErrUnknownLocation, spec.Campus, spec.Code)
		}
		kind, err := ParseBuildingKind(spec.Kind)
		if err != nil {
			return nil, err
		}
		atlas.buildings[spec.Code] = &Building{
			Code:      spec.Code,
			Name:      spec.Name,
			Kind:      kind,
			Campus:    campus,
			Longitude: spec.Longitude,
			Latitude:  spec.Latitude,
		}
	}

	//** Nearest halls
	halls := lo.Filter(lo.Values(atlas.buildings), func(building *Building, _ int) bool { return building.Kind == Hall })
	if len(halls) == 0 {
		return nil, fmt.Errorf("the layout declares no dining hall")
	}
	slices.SortFunc(halls, func(a, b *Building) int { return strings.Compare(a.Code, b.Code) }) // Ties go to the smallest code
	for _, building := range atlas.buildings {
		if building.Kind == Hall {
			building.nearestHall = building
			continue
		}
		building.nearestHall = lo.MinBy(halls, func(a, b *Building) bool {
			return Distance(building, a) < Distance(building, b)
		})
	}

	atlas.buildingCodes = lo.Keys(atlas.buildings)
	slices.SortFunc(atlas.buildingCodes, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	return atlas, nil
}

func (atlas *Atlas) Campus(code string) (*Campus, error) {
	campus, ok := atlas.campuses[code]
	if !ok {
		return nil, fmt.Errorf("%w: campus \"%v\"", ErrUnknownLocation, code)
	}
	return campus, nil
}

func (atlas *Atlas) Building(code string) (*Building, error) {
	building, ok := atlas.buildings[code]
	if !ok {
		return nil, fmt.Errorf("%w: building \"%v\"", ErrUnknownLocation, code)
	}
	return building, nil
}

// Room returns the room identified by code, creating it the first time it's requested.
// Codes are made of a building code, optionally followed by a floor digit and the room number (e.g. "HGX507").
func (atlas *Atlas) Room(code string) (*Room, error) {
	atlas.mutex.Lock()
	defer atlas.mutex.Unlock()

	if room, ok := atlas.rooms[code]; ok {
		return room, nil
	}

	room, err := atlas.parseRoom(code)
	if err != nil {
		return nil, err
	}
	atlas.rooms[code] = room
	return room, nil
}

func (atlas *Atlas) parseRoom(code string) (*Room, error) {
	buildingCode, ok := lo.Find(atlas.buildingCodes, func(buildingCode string) bool {
		return strings.HasPrefix(code, buildingCode)
	})
	if !ok {
		return nil, fmt.Errorf("%w: no building matches room \"%v\"", ErrUnknownLocation, code)
	}

	room := &Room{Code: code, Building: atlas.buildings[buildingCode], Floor: 1}

	rest := code[len(buildingCode):]
	if rest == "" {
		return room, nil
	}
	floor, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsDigit(floor) || floor > unicode.MaxASCII {
		return nil, fmt.Errorf("%w: cannot read the floor of room \"%v\"", ErrUnknownLocation, code)
	}
	room.Floor = int(floor - '0')
	room.Number = rest[size:]
	return room, nil
}

// Rooms returns how many distinct rooms have been requested so far
func (atlas *Atlas) Rooms() int {
	atlas.mutex.Lock()
	defer atlas.mutex.Unlock()
	return len(atlas.rooms)
}
