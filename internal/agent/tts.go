package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type TTSClient interface {
	Synthesize(ctx context.Context, text string, language string) ([]byte, error)
}

type speechClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpeechClient talks to a local gTTS-style synthesis service that
// returns mp3 audio for the given text and language code ("en" or "te").
func NewSpeechClient(baseURL string) TTSClient {
	return &speechClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ttsRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func (c *speechClient) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	if language == "" {
		language = "en"
	}

	jsonBody, _ := json.Marshal(ttsRequest{Text: text, Lang: language})
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/synthesize", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TTS API error: %s - %s", resp.Status, string(body))
	}

	return io.ReadAll(resp.Body)
}
