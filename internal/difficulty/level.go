package difficulty

import "fmt"

// Level is a difficulty tier on the ordered ladder. Paths move along the
// ladder one tier at a time, never skipping.
type Level int

const (
	Beginner Level = iota
	Intermediate
	Advanced
	Expert
)

// AllLevels returns the ladder in ascending order.
func AllLevels() []Level {
	return []Level{Beginner, Intermediate, Advanced, Expert}
}

// String returns the canonical lowercase name.
func (l Level) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l is on the ladder.
func (l Level) Valid() bool {
	return l >= Beginner && l <= Expert
}

// Next returns the tier one step up, or false at Expert.
func (l Level) Next() (Level, bool) {
	if l >= Expert {
		return l, false
	}
	return l + 1, true
}

// Previous returns the tier one step down, or false at Beginner.
func (l Level) Previous() (Level, bool) {
	if l <= Beginner {
		return l, false
	}
	return l - 1, true
}

// ParseLevel parses a canonical level name.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	case "expert":
		return Expert, nil
	default:
		return Beginner, fmt.Errorf("unknown difficulty level: %q", s)
	}
}
