package path

import (
	"time"

	"github.com/abhisek/learnpath/internal/difficulty"
)

// Objective is a single learning objective node in a path's DAG.
// Prerequisites are objective IDs with AND semantics: all must be
// completed before the objective surfaces.
type Objective struct {
	ID                string
	Title             string
	EstimatedDuration time.Duration
	Prerequisites     []string
	Skills            []string
}

// Milestone groups consecutive objectives into a checkpoint.
type Milestone struct {
	ID         string
	Title      string
	Objectives []string
}

// Progress is a snapshot of how far a learner has moved through a path.
type Progress struct {
	CompletedObjectives []string
	OverallProgress     float64 // 0-100
	CurrentMilestone    string
}

// Changes records what an adaptation did to a path.
type Changes struct {
	PreviousLevel difficulty.Level
	NewLevel      difficulty.Level
	Direction     string
	Confidence    float64
}

// Adaptation is an immutable audit record of one difficulty change.
// Records are appended, never edited or removed; replaying them explains
// every tier the path has occupied.
type Adaptation struct {
	ID        string
	Timestamp time.Time
	Reason    string
	Changes   Changes
}

// Path identifies a learner+subject and carries all adaptive state.
type Path struct {
	ID           string
	UserID       string
	Subject      string
	CurrentLevel difficulty.Level
	Objectives   []Objective
	Milestones   []Milestone
	Progress     Progress
	Adaptations  []Adaptation
	// Version increments on every level write; it backs the optimistic
	// concurrency check in PathStore.UpdateLevel.
	Version int64
}

// CompletedSet returns the completed objectives as a lookup set.
func (p *Path) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.Progress.CompletedObjectives))
	for _, id := range p.Progress.CompletedObjectives {
		set[id] = true
	}
	return set
}

// SkillProgress tracks one (user, skill) mastery state. Read-only input
// to sequencing and competency evaluation.
type SkillProgress struct {
	SkillID          string
	CurrentLevel     float64 // 0-100
	MasteryThreshold float64
	Mastered         bool
}

// MasteredSet reduces skill progress records to a mastered-skill lookup.
func MasteredSet(progress []SkillProgress) map[string]bool {
	set := make(map[string]bool)
	for _, sp := range progress {
		if sp.Mastered || (sp.MasteryThreshold > 0 && sp.CurrentLevel >= sp.MasteryThreshold) {
			set[sp.SkillID] = true
		}
	}
	return set
}
