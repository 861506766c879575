package models

import "time"

// MaxHistoryTurns caps how many conversation turns a session retains.
// When the cap is hit the oldest turns are dropped first.
const MaxHistoryTurns = 100

// Session tracks one conversation identified by a caller-supplied session id.
// It is created on the first message for that id and mutated on every turn.
type Session struct {
	SessionID   string        `bson:"sessionId" json:"sessionId"`
	LastMessage string        `bson:"lastMessage" json:"lastMessage"`
	Destination string        `bson:"destination,omitempty" json:"destination,omitempty"`
	Days        int           `bson:"days,omitempty" json:"days,omitempty"`
	Preferences []string      `bson:"preferences,omitempty" json:"preferences,omitempty"`
	History     []ChatMessage `bson:"history" json:"history"`
	Finished    bool          `bson:"finished" json:"finished"`
	TripDetails TripDetails   `bson:"tripDetails,omitempty" json:"tripDetails,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// TripDetails carries structured data produced by a finished pipeline run.
type TripDetails struct {
	Days map[string]DayStay `bson:"days,omitempty" json:"days,omitempty"`
}

// AppendTurn appends one turn to the history, enforcing the retention cap.
// History order is arrival order and is never reordered.
func (s *Session) AppendTurn(role, content string) {
	s.History = append(s.History, ChatMessage{Role: role, Content: content})
	if len(s.History) > MaxHistoryTurns {
		s.History = s.History[len(s.History)-MaxHistoryTurns:]
	}
}
