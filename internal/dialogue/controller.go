package dialogue

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"healthcare-chatbot/internal/knowledge"
)

const (
	botImage     = "/static/images/medical-bot.svg"
	minQuestions = 4
)

var onsetQuestion = Question{
	Text:      "When did these symptoms first appear?",
	Image:     botImage,
	Animation: "fadeIn",
}

var fillerQuestions = []Question{
	{Text: "Have you taken any medications for these symptoms?", Image: botImage, Animation: "slideInDown"},
	{Text: "Have you experienced any other related symptoms?", Image: botImage, Animation: "bounceInUp"},
	{Text: "Do your symptoms affect your daily activities?", Image: botImage, Animation: "fadeInLeft"},
}

// Rotated across symptom-specific questions so the UI varies its entrance
// animation the way the original chat client does.
var templateAnimations = []string{
	"slideInRight", "bounceIn", "fadeInUp", "slideInLeft", "bounceInRight", "fadeInDown",
}

// Controller owns the follow-up dialogue state machine. It holds no mutable
// state of its own; all per-consultation progress lives in the Session
// value, so one controller serves any number of concurrent sessions.
type Controller struct {
	matcher *knowledge.Matcher
}

func NewController(m *knowledge.Matcher) *Controller {
	return &Controller{matcher: m}
}

// Begin starts a new session from the initial symptom text. It runs the
// matcher once, fixes the question list for the lifetime of the session and
// leaves the session waiting on its first question (or finalized outright
// if no questions could be built).
func (c *Controller) Begin(text, language string) (*Session, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingInput
	}
	if language == "" {
		language = "english"
	}

	matched := c.matcher.Match(text)
	s := &Session{
		ID:           uuid.New(),
		OriginalText: text,
		Matched:      matched,
		Questions:    buildQuestions(matched, language),
		Language:     language,
		CreatedAt:    time.Now(),
	}
	if len(s.Questions) == 0 {
		s.State = StateFinalized
	} else {
		s.State = StateAskingFollowUp
	}
	return s, nil
}

// Answer records the reply to the question at index and advances the
// cursor. The index must equal the current cursor; answering a finalized
// session or out of order is an invalid transition and leaves the session
// unchanged.
func (c *Controller) Answer(s *Session, index int, text string) error {
	if s.State == StateFinalized {
		return ErrSessionFinalized
	}
	if s.State != StateAskingFollowUp || s.Cursor >= len(s.Questions) {
		return ErrInvalidTransition
	}
	if index != s.Cursor {
		return ErrInvalidTransition
	}
	s.Answers = append(s.Answers, Answer{
		QuestionIndex: index,
		Question:      s.Questions[index].Text,
		Answer:        text,
	})
	s.Cursor++
	if s.Cursor >= len(s.Questions) {
		s.State = StateFinalized
	}
	return nil
}

// buildQuestions applies the question-selection policy: the generic onset
// question first, then every matched symptom's templates in knowledge-base
// order, then generic fillers until at least four questions exist. The
// total is never capped above four.
func buildQuestions(matched []knowledge.SymptomRecord, language string) []Question {
	questions := []Question{onsetQuestion}

	anim := 0
	for _, rec := range matched {
		templates := rec.FollowUp[language]
		if templates == nil {
			templates = rec.FollowUp["english"]
		}
		for _, text := range templates {
			questions = append(questions, Question{
				Text:      text,
				Image:     botImage,
				Animation: templateAnimations[anim%len(templateAnimations)],
			})
			anim++
		}
	}

	for _, filler := range fillerQuestions {
		if len(questions) >= minQuestions {
			break
		}
		questions = append(questions, filler)
	}
	return questions
}
