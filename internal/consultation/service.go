package consultation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthcare-chatbot/internal/dialogue"
	"healthcare-chatbot/internal/summary"
)

// STTClient is the speech-to-text collaborator.
type STTClient interface {
	Transcribe(ctx context.Context, audioData []byte, language string) (string, error)
}

// TTSClient is the speech-synthesis collaborator.
type TTSClient interface {
	Synthesize(ctx context.Context, text string, language string) ([]byte, error)
}

// ReportService delivers finished summary sheets to a clinician.
type ReportService interface {
	SendSummarySheet(ctx context.Context, sheet SummarySheet) error
}

type Service interface {
	StartIntake(ctx context.Context, userID int64, text, language string) (*ChatResponse, error)
	SubmitAnswer(ctx context.Context, userID int64, sessionID uuid.UUID, index int, answer string) (*ChatResponse, error)
	TranscribeAudio(ctx context.Context, audioData []byte, language string) (string, error)
	SynthesizeSpeech(ctx context.Context, text, language string) ([]byte, error)
	Greeting(ctx context.Context, language string) (string, []byte)
	Summaries(ctx context.Context, userID int64) ([]SummarySheet, error)
}

type service struct {
	repo       Repository
	controller *dialogue.Controller
	renderer   *summary.Renderer
	localizer  *summary.Localizer
	translator summary.Translator
	sttClient  STTClient
	ttsClient  TTSClient
	reportSvc  ReportService
	store      *SessionStore
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	controller *dialogue.Controller,
	renderer *summary.Renderer,
	translator summary.Translator,
	stt STTClient,
	tts TTSClient,
	report ReportService,
	logger *zap.Logger,
) Service {
	return &service{
		repo:       repo,
		controller: controller,
		renderer:   renderer,
		localizer:  summary.NewLocalizer(translator),
		translator: translator,
		sttClient:  stt,
		ttsClient:  tts,
		reportSvc:  report,
		store:      NewSessionStore(),
		logger:     logger,
	}
}

// StartIntake opens a dialogue session from the initial symptom text and
// returns the first follow-up question, or the finished summary when no
// questions apply.
func (s *service) StartIntake(ctx context.Context, userID int64, text, language string) (*ChatResponse, error) {
	sess, err := s.controller.Begin(text, language)
	if err != nil {
		return nil, err
	}

	if sess.Language == "telugu" {
		s.translateQuestions(ctx, sess)
	}

	if sess.Finalized() {
		return s.finalize(ctx, userID, sess), nil
	}

	s.store.Put(sess)
	question := sess.Questions[0]
	return &ChatResponse{
		IsFollowUp:           true,
		SessionID:            sess.ID.String(),
		CurrentQuestionIndex: 0,
		TotalQuestions:       len(sess.Questions),
		CurrentQuestion:      &question,
		OriginalSymptoms:     sess.OriginalText,
	}, nil
}

// SubmitAnswer records the answer for the pending question and either asks
// the next one or finalizes the consultation.
func (s *service) SubmitAnswer(ctx context.Context, userID int64, sessionID uuid.UUID, index int, answer string) (*ChatResponse, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, dialogue.ErrSessionNotFound
	}

	if err := s.controller.Answer(sess, index, answer); err != nil {
		return nil, err
	}

	if sess.Finalized() {
		return s.finalize(ctx, userID, sess), nil
	}

	question, _ := sess.CurrentQuestion()
	return &ChatResponse{
		IsFollowUp:           true,
		SessionID:            sess.ID.String(),
		CurrentQuestionIndex: sess.Cursor,
		TotalQuestions:       len(sess.Questions),
		CurrentQuestion:      &question,
		OriginalSymptoms:     sess.OriginalText,
	}, nil
}

// finalize renders the summary, archives it and hands the sheet to the
// clinician report channel. Archive failure is reported alongside the
// summary, never instead of it; the session is discarded either way.
func (s *service) finalize(ctx context.Context, userID int64, sess *dialogue.Session) *ChatResponse {
	sum := s.renderer.Render(sess.OriginalText, sess.Matched, sess.Answers)
	text, status := s.localizer.Localize(ctx, sum, sess.Language)

	sheet := &SummarySheet{
		UserID:   userID,
		Symptoms: sess.OriginalText,
		Summary:  text,
		Severity: string(sum.SeverityLevel),
	}

	resp := &ChatResponse{
		IsFollowUp:        false,
		SummarySheet:      text,
		SeverityLevel:     string(sum.SeverityLevel),
		Warnings:          sum.Warnings,
		TranslationStatus: string(status),
	}

	if err := s.repo.SaveSummarySheet(ctx, sheet); err != nil {
		s.logger.Error("save summary sheet", zap.Error(err), zap.Int64("user_id", userID))
		resp.SaveError = "failed to save consultation summary"
	}

	if s.reportSvc != nil {
		// Clinician delivery runs in the background; the patient response
		// never waits on it.
		go func(sheet SummarySheet) {
			if err := s.reportSvc.SendSummarySheet(context.Background(), sheet); err != nil {
				s.logger.Warn("send clinician report", zap.Error(err))
			}
		}(*sheet)
	}

	s.store.Delete(sess.ID)
	return resp
}

// translateQuestions localizes the question texts best-effort. Questions
// already written in Telugu (knowledge-base templates) are left alone, and
// a failed translation keeps the English text.
func (s *service) translateQuestions(ctx context.Context, sess *dialogue.Session) {
	if s.translator == nil {
		return
	}
	for i := range sess.Questions {
		if containsTelugu(sess.Questions[i].Text) {
			continue
		}
		translated, err := s.translator.Translate(ctx, sess.Questions[i].Text, "te")
		if err != nil {
			s.logger.Debug("translate question", zap.Error(err))
			continue
		}
		sess.Questions[i].Text = translated
	}
}

func (s *service) TranscribeAudio(ctx context.Context, audioData []byte, language string) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("empty audio data")
	}
	return s.sttClient.Transcribe(ctx, audioData, recognitionLocale(language))
}

func (s *service) SynthesizeSpeech(ctx context.Context, text, language string) ([]byte, error) {
	return s.ttsClient.Synthesize(ctx, text, speechCode(language))
}

var greetings = map[string]string{
	"english": "Hello! I am your healthcare assistant. How can I help you today?",
	"telugu":  "శుభ సాయంత్రం! నేను మీ ఆరోగ్య సహాయకుడిని. ఈరోజు మీకు ఎలా సహాయపడగలను?",
}

// Greeting returns the localized welcome line with synthesized audio when
// the speech collaborator is available.
func (s *service) Greeting(ctx context.Context, language string) (string, []byte) {
	text, ok := greetings[language]
	if !ok {
		text = greetings["english"]
	}
	audio, err := s.ttsClient.Synthesize(ctx, text, speechCode(language))
	if err != nil {
		s.logger.Debug("greeting synthesis", zap.Error(err))
		return text, nil
	}
	return text, audio
}

func (s *service) Summaries(ctx context.Context, userID int64) ([]SummarySheet, error) {
	return s.repo.ListSummarySheets(ctx, userID)
}

func recognitionLocale(language string) string {
	if language == "telugu" {
		return "te-IN"
	}
	return "en-IN"
}

func speechCode(language string) string {
	if language == "telugu" {
		return "te"
	}
	return "en"
}

func containsTelugu(s string) bool {
	for _, r := range s {
		if r >= 0x0C00 && r <= 0x0C7F {
			return true
		}
	}
	return false
}
