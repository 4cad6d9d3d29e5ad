package store

// JSON column payloads. These mirror the domain types with explicit
// tags so the stored format stays stable if domain fields are renamed.

import (
	"time"

	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/performance"
)

type objectiveData struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DurationSecs  int64    `json:"duration_secs"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

type milestoneData struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Objectives []string `json:"objectives,omitempty"`
}

type progressData struct {
	CompletedObjectives []string `json:"completed_objectives,omitempty"`
	OverallProgress     float64  `json:"overall_progress"`
	CurrentMilestone    string   `json:"current_milestone,omitempty"`
}

type changesData struct {
	PreviousLevel string  `json:"previous_level"`
	NewLevel      string  `json:"new_level"`
	Direction     string  `json:"direction"`
	Confidence    float64 `json:"confidence"`
}

type assessmentData struct {
	QuestionID string `json:"question_id"`
	Topic      string `json:"topic"`
	Correct    bool   `json:"correct"`
	Attempts   int    `json:"attempts"`
}

type engagementData struct {
	FocusScore       float64 `json:"focus_score"`
	InteractionCount int     `json:"interaction_count"`
}

func objectivesToData(objs []path.Objective) []objectiveData {
	data := make([]objectiveData, len(objs))
	for i, o := range objs {
		data[i] = objectiveData{
			ID:            o.ID,
			Title:         o.Title,
			DurationSecs:  int64(o.EstimatedDuration / time.Second),
			Prerequisites: o.Prerequisites,
			Skills:        o.Skills,
		}
	}
	return data
}

func objectivesFromData(data []objectiveData) []path.Objective {
	objs := make([]path.Objective, len(data))
	for i, d := range data {
		objs[i] = path.Objective{
			ID:                d.ID,
			Title:             d.Title,
			EstimatedDuration: time.Duration(d.DurationSecs) * time.Second,
			Prerequisites:     d.Prerequisites,
			Skills:            d.Skills,
		}
	}
	return objs
}

func milestonesToData(ms []path.Milestone) []milestoneData {
	data := make([]milestoneData, len(ms))
	for i, m := range ms {
		data[i] = milestoneData{ID: m.ID, Title: m.Title, Objectives: m.Objectives}
	}
	return data
}

func milestonesFromData(data []milestoneData) []path.Milestone {
	ms := make([]path.Milestone, len(data))
	for i, d := range data {
		ms[i] = path.Milestone{ID: d.ID, Title: d.Title, Objectives: d.Objectives}
	}
	return ms
}

func assessmentsToData(results []performance.AssessmentResult) []assessmentData {
	data := make([]assessmentData, len(results))
	for i, r := range results {
		data[i] = assessmentData{
			QuestionID: r.QuestionID,
			Topic:      r.Topic,
			Correct:    r.Correct,
			Attempts:   r.Attempts,
		}
	}
	return data
}

func assessmentsFromData(data []assessmentData) []performance.AssessmentResult {
	results := make([]performance.AssessmentResult, len(data))
	for i, d := range data {
		results[i] = performance.AssessmentResult{
			QuestionID: d.QuestionID,
			Topic:      d.Topic,
			Correct:    d.Correct,
			Attempts:   d.Attempts,
		}
	}
	return results
}
