package consultation

import (
	"time"

	"healthcare-chatbot/internal/dialogue"
)

// ChatRequest is the single intake request shape: an initial symptom
// submission (text or voice) or a follow-up answer for an open session.
type ChatRequest struct {
	InputType            string `json:"input_type"` // "text" or "voice"
	Language             string `json:"language"`
	Symptoms             string `json:"symptoms"`
	Audio                string `json:"audio"` // base64, voice input only
	IsFollowUp           bool   `json:"is_follow_up"`
	SessionID            string `json:"session_id"`
	CurrentQuestionIndex int    `json:"current_question_index"`
	Answer               string `json:"answer"`
	VoiceResponse        bool   `json:"voice_response"`
}

// ChatResponse carries either the next follow-up question or the final
// summary sheet.
type ChatResponse struct {
	IsFollowUp           bool               `json:"is_follow_up"`
	SessionID            string             `json:"session_id,omitempty"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	TotalQuestions       int                `json:"total_questions,omitempty"`
	CurrentQuestion      *dialogue.Question `json:"current_question,omitempty"`
	OriginalSymptoms     string             `json:"original_symptoms,omitempty"`
	SummarySheet         string             `json:"summary_sheet,omitempty"`
	SeverityLevel        string             `json:"severity_level,omitempty"`
	Warnings             []string           `json:"warnings,omitempty"`
	TranslationStatus    string             `json:"translation_status,omitempty"`
	// SaveError reports a failed archive of the summary sheet. The summary
	// itself is still valid and returned.
	SaveError   string `json:"save_error,omitempty"`
	AudioBase64 string `json:"audio_base64,omitempty"`
}

// SummarySheet is the persisted record of a finished consultation.
type SummarySheet struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Symptoms  string    `json:"symptoms" db:"symptoms"`
	Summary   string    `json:"summary" db:"summary"`
	Severity  string    `json:"severity" db:"severity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
