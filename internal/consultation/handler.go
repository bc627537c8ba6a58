package consultation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healthcare-chatbot/internal/auth"
	"healthcare-chatbot/internal/dialogue"
)

type Handler struct {
	svc     Service
	authSvc auth.Service
}

func NewHandler(svc Service, authSvc auth.Service) *Handler {
	return &Handler{svc: svc, authSvc: authSvc}
}

// HandleChat is the single intake endpoint: initial symptoms (text or
// base64 voice) or a follow-up answer, depending on is_follow_up.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	language := req.Language
	if language == "" {
		language = "english"
	}

	var resp *ChatResponse
	var err error

	if req.IsFollowUp {
		sessionID, parseErr := uuid.Parse(req.SessionID)
		if parseErr != nil {
			http.Error(w, "Invalid session ID", http.StatusBadRequest)
			return
		}
		resp, err = h.svc.SubmitAnswer(r.Context(), userID, sessionID, req.CurrentQuestionIndex, req.Answer)
	} else {
		symptoms := req.Symptoms
		if req.InputType == "voice" {
			audioData, decodeErr := base64.StdEncoding.DecodeString(req.Audio)
			if decodeErr != nil || len(audioData) == 0 {
				http.Error(w, "Empty audio data. Please try recording again.", http.StatusBadRequest)
				return
			}
			symptoms, err = h.svc.TranscribeAudio(r.Context(), audioData, language)
			if err != nil || symptoms == "" {
				http.Error(w, "Could not understand the audio. Please try again.", http.StatusBadRequest)
				return
			}
		}
		resp, err = h.svc.StartIntake(r.Context(), userID, symptoms, language)
	}

	if err != nil {
		writeDialogueError(w, err)
		return
	}

	if req.VoiceResponse {
		h.attachAudio(r, resp, language)
	}
	json.NewEncoder(w).Encode(resp)
}

// attachAudio synthesizes the question or summary text. Synthesis failure
// is silent; the text response always goes out.
func (h *Handler) attachAudio(r *http.Request, resp *ChatResponse, language string) {
	text := resp.SummarySheet
	if resp.IsFollowUp && resp.CurrentQuestion != nil {
		text = resp.CurrentQuestion.Text
	}
	if text == "" {
		return
	}
	if audio, err := h.svc.SynthesizeSpeech(r.Context(), text, language); err == nil {
		resp.AudioBase64 = base64.StdEncoding.EncodeToString(audio)
	}
}

// HandleAudioUpload accepts a multipart voice recording, transcribes it
// and starts the intake with the recognized text.
func (h *Handler) HandleAudioUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	r.ParseMultipartForm(10 << 20)
	language := r.FormValue("language")
	if language == "" {
		language = "english"
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "Error retrieving audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		http.Error(w, "Failed to read audio file", http.StatusInternalServerError)
		return
	}

	text, err := h.svc.TranscribeAudio(r.Context(), buf.Bytes(), language)
	if err != nil {
		http.Error(w, "Transcription failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if text == "" {
		json.NewEncoder(w).Encode(map[string]string{"text": ""})
		return
	}

	resp, err := h.svc.StartIntake(r.Context(), userID, text, language)
	if err != nil {
		writeDialogueError(w, err)
		return
	}
	json.NewEncoder(w).Encode(struct {
		*ChatResponse
		Text string `json:"text"`
	}{resp, text})
}

type ttsRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (h *Handler) HandleTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	audioData, err := h.svc.SynthesizeSpeech(r.Context(), req.Text, req.Language)
	if err != nil {
		http.Error(w, "TTS failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audioData)
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (h *Handler) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.authSvc.SetLanguage(r.Context(), userID, req.Language); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

func (h *Handler) HandleGreeting(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		if userID, ok := auth.UserIDFromContext(r.Context()); ok {
			if user, err := h.authSvc.GetUser(r.Context(), userID); err == nil {
				language = user.Language
			}
		}
	}
	if language == "" {
		language = "english"
	}

	text, audio := h.svc.Greeting(r.Context(), language)
	resp := map[string]any{"text": text, "audio": nil}
	if len(audio) > 0 {
		resp["audio"] = base64.StdEncoding.EncodeToString(audio)
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) HandleSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	sheets, err := h.svc.Summaries(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load summaries", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(sheets)
}

func writeDialogueError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dialogue.ErrMissingInput):
		http.Error(w, "Please provide symptoms", http.StatusBadRequest)
	case errors.Is(err, dialogue.ErrInvalidTransition):
		http.Error(w, "No question is pending at this position", http.StatusConflict)
	case errors.Is(err, dialogue.ErrSessionFinalized):
		http.Error(w, "This consultation has already concluded", http.StatusConflict)
	case errors.Is(err, dialogue.ErrSessionNotFound):
		http.Error(w, "Consultation session not found", http.StatusNotFound)
	default:
		http.Error(w, "Processing failed: "+err.Error(), http.StatusInternalServerError)
	}
}

func RegisterRoutes(r chi.Router, h *Handler, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/chatbot", h.HandleChat)
		r.Post("/chatbot/audio", h.HandleAudioUpload)
		r.Post("/language", h.HandleSetLanguage)
		r.Get("/summaries", h.HandleSummaries)
	})
	r.Post("/tts", h.HandleTTS)
	r.Get("/greeting", h.HandleGreeting)
}
