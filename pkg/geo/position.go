package geo

import "math"

// Position is the canonical point a place resolves to. Finer grained fields are nil when unknown.
type Position struct {
	Campus   *Campus
	Building *Building
	Room     *Room
	Remote   bool // Remote positions have no physical location
}

// Locator is implemented by everything a student can commute between
type Locator interface {
	Locate() Position
}

func (campus *Campus) Locate() Position {
	return Position{Campus: campus}
}

func (building *Building) Locate() Position {
	return Position{Campus: building.Campus, Building: building}
}

func (room *Room) Locate() Position {
	return Position{Campus: room.Building.Campus, Building: room.Building, Room: room}
}

// RemotePosition is where remote sessions take place
var RemotePosition = Position{Remote: true}

// CommuteTime returns the expected minutes to get from one place to another
func CommuteTime(from, to Locator) float64 {
	return commute(from.Locate(), to.Locate())
}

func commute(from, to Position) float64 {
	switch {
	case from.Remote || to.Remote:
		return RemoteTransition
	case from.Room != nil && to.Room != nil:
		return roomToRoom(from.Room, to.Room)
	case from.Room != nil && to.Building != nil:
		return floorTime(from.Room) + buildingToBuilding(from.Room.Building, to.Building)
	case from.Building != nil && to.Room != nil:
		// Same as leaving the room for the building, shuttle included
		return floorTime(to.Room) + buildingToBuilding(to.Room.Building, from.Building)
	case from.Building != nil && to.Building != nil:
		return buildingToBuilding(from.Building, to.Building)
	default:
		return from.Campus.ShuttleTime(to.Campus)
	}
}

func roomToRoom(from, to *Room) float64 {
	if from == to {
		return 0
	}
	if from.Building == to.Building {
		return math.Abs(float64(from.Floor-to.Floor))*FloorTime + RoomExitTime
	}
	// Down to the ground floor, over to the other building, up to the room
	return float64(from.Floor+to.Floor-2)*FloorTime + RoomExitTime + buildingToBuilding(from.Building, to.Building)
}

// Between the room and the ground floor of its building
func floorTime(room *Room) float64 {
	return float64(room.Floor-1)*FloorTime + RoomExitTime
}

func buildingToBuilding(from, to *Building) float64 {
	if from.Campus != to.Campus {
		return from.Campus.ShuttleTime(to.Campus)
	}
	return localCommute(Distance(from, to))
}
