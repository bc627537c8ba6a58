package dialogue

import (
	"time"

	"github.com/google/uuid"

	"healthcare-chatbot/internal/knowledge"
)

type State string

const (
	StateAwaitingInput  State = "awaiting_input"
	StateAskingFollowUp State = "asking_follow_up"
	StateFinalized      State = "finalized"
)

// Question is one follow-up prompt. Image and Animation are display hints
// for the chat UI and play no part in the dialogue logic.
type Question struct {
	Text      string `json:"question"`
	Image     string `json:"image"`
	Animation string `json:"animation"`
}

// Answer records the reply to the question at QuestionIndex.
type Answer struct {
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
}

// Session is the per-consultation dialogue state. It is an explicit value
// passed into and returned from controller calls; nothing here is shared
// between sessions. Matched symptoms and the question list are fixed at
// session start, answers are append-only and Cursor only moves forward.
type Session struct {
	ID           uuid.UUID
	OriginalText string
	Matched      []knowledge.SymptomRecord
	Questions    []Question
	Answers      []Answer
	Cursor       int
	Language     string
	State        State
	CreatedAt    time.Time
}

// CurrentQuestion returns the next unanswered question, if any.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.State != StateAskingFollowUp || s.Cursor >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// Finalized reports whether the dialogue has run out of questions and the
// session is ready for summary rendering.
func (s *Session) Finalized() bool {
	return s.State == StateFinalized
}
