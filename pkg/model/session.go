package model

import (
	"fmt"
	"strings"

	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/samber/lo"
)

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Session is a weekly recurring occupancy of a course
type Session struct {
	Weekday     int // 0 is Monday
	Start       int // First period, 1-based
	End         int // Last period, inclusive
	Weeks       uint64
	WeeksDigest string
	Rooms       []*geo.Room // Empty for remote sessions

	course *Course
}

func NewSession(weekday, start, end, maxPeriods int, weeks uint64, weeksDigest string, rooms []*geo.Room) (*Session, error) {
	if weekday < 0 || weekday >= len(Weekdays) {
		return nil, fmt.Errorf("%w: weekday %v is out of range", ErrMalformedInput, weekday)
	} else if start < 1 {
		return nil, fmt.Errorf("%w: the first period is 1, got %v", ErrMalformedInput, start)
	} else if start > end {
		return nil, fmt.Errorf("%w: session ends (%v) before it starts (%v)", ErrMalformedInput, end, start)
	} else if end > maxPeriods {
		return nil, fmt.Errorf("%w: session ends at period %v but there are only %v periods a day", ErrMalformedInput, end, maxPeriods)
	}

	return &Session{
		Weekday:     weekday,
		Start:       start,
		End:         end,
		Weeks:       weeks,
		WeeksDigest: weeksDigest,
		Rooms:       rooms,
	}, nil
}

// ParseWeeks turns a week-state string into a mask where bit n is set if state[n] is '1'
func ParseWeeks(state string) (uint64, error) {
	if len(state) > 64 {
		return 0, fmt.Errorf("%w: week state spans %v weeks, at most 64 are supported", ErrMalformedInput, len(state))
	}

	var weeks uint64
	for week, char := range state {
		switch char {
		case '1':
			weeks |= 1 << uint(week)
		case '0':
		default:
			return 0, fmt.Errorf("%w: week state \"%v\" is not a bit string", ErrMalformedInput, state)
		}
	}
	return weeks, nil
}

// Course returns the course the session belongs to
func (session *Session) Course() *Course {
	return session.course
}

func (session *Session) Remote() bool {
	return len(session.Rooms) == 0
}

// Conflicts reports whether both sessions take place on the same weekday, share a period and share a week
func (session *Session) Conflicts(other *Session) bool {
	return session.Weekday == other.Weekday &&
		session.End >= other.Start && other.End >= session.Start &&
		session.Weeks&other.Weeks != 0
}

// Locate resolves the session to its first room
func (session *Session) Locate() geo.Position {
	if session.Remote() {
		return geo.RemotePosition
	}
	return session.Rooms[0].Locate()
}

// NearestHall returns nil for remote sessions
func (session *Session) NearestHall() *geo.Building {
	if session.Remote() {
		return nil
	}
	return session.Rooms[0].NearestHall()
}

func (session *Session) RoomsString() string {
	if session.Remote() {
		return RemoteRooms
	}
	return strings.Join(lo.Map(session.Rooms, func(room *geo.Room, _ int) string { return room.Code }), ",")
}

func (session *Session) String() string {
	return fmt.Sprintf("%v weeks %v %v-%v %v", session.WeeksDigest, Weekdays[session.Weekday], session.Start, session.End, session.RoomsString())
}
