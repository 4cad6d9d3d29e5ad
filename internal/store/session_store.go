package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/internal/performance"
)

type sessionStore struct {
	db *sql.DB
}

// Add records a completed session. Sessions are immutable once written.
func (ss *sessionStore) Add(ctx context.Context, s performance.Session) error {
	assessments, err := json.Marshal(assessmentsToData(s.Assessments))
	if err != nil {
		return fmt.Errorf("marshal assessments: %w", err)
	}
	engagement, err := json.Marshal(engagementData{
		FocusScore:       s.Engagement.FocusScore,
		InteractionCount: s.Engagement.InteractionCount,
	})
	if err != nil {
		return fmt.Errorf("marshal engagement: %w", err)
	}

	_, err = ss.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, path_id, completed_at, comprehension, duration_secs, assessments, engagement)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.PathID, s.CompletedAt.UTC().Format(time.RFC3339Nano),
		s.ComprehensionScore, s.DurationSecs, string(assessments), string(engagement))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// RecentSessions returns the most recent sessions for (user, path) in
// chronological order, oldest first, as the trend analyzer expects.
func (ss *sessionStore) RecentSessions(ctx context.Context, userID, pathID string, limit int) ([]performance.Session, error) {
	rows, err := ss.db.QueryContext(ctx,
		`SELECT id, user_id, path_id, completed_at, comprehension, duration_secs, assessments, engagement
		 FROM sessions WHERE user_id = ? AND path_id = ?
		 ORDER BY completed_at DESC, id DESC LIMIT ?`,
		userID, pathID, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []performance.Session
	for rows.Next() {
		var s performance.Session
		var completedAt, assessmentsJSON, engagementJSON string
		err := rows.Scan(&s.ID, &s.UserID, &s.PathID, &completedAt,
			&s.ComprehensionScore, &s.DurationSecs, &assessmentsJSON, &engagementJSON)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.CompletedAt, err = time.Parse(time.RFC3339Nano, completedAt)
		if err != nil {
			return nil, fmt.Errorf("parse session timestamp: %w", err)
		}

		var assessData []assessmentData
		if err := json.Unmarshal([]byte(assessmentsJSON), &assessData); err != nil {
			return nil, fmt.Errorf("decode assessments: %w", err)
		}
		s.Assessments = assessmentsFromData(assessData)

		var engData engagementData
		if err := json.Unmarshal([]byte(engagementJSON), &engData); err != nil {
			return nil, fmt.Errorf("decode engagement: %w", err)
		}
		s.Engagement = performance.EngagementMetrics{
			FocusScore:       engData.FocusScore,
			InteractionCount: engData.InteractionCount,
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query returned newest first; reverse to chronological.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}
