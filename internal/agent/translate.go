package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// maxChunkSize keeps each request inside what the translation service
// accepts without truncating.
const maxChunkSize = 450

var sentenceBoundary = regexp.MustCompile(`(?:[.!?])\s+`)

type TranslateClient interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type translateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTranslateClient talks to a LibreTranslate-style machine translation
// service.
func NewTranslateClient(baseURL string, timeout time.Duration) TranslateClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &translateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type translateRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate converts text into the target language. Long input is split
// into chunks at sentence boundaries; a chunk whose request fails carries
// over untranslated so the caller always gets a best-effort rendering. An
// error is returned only when every chunk fails.
func (c *translateClient) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text for translation")
	}

	chunks := splitChunks(text)
	translated := make([]string, 0, len(chunks))
	failures := 0
	var lastErr error

	for _, chunk := range chunks {
		out, err := c.translateChunk(ctx, chunk, target)
		if err != nil {
			failures++
			lastErr = err
			translated = append(translated, chunk)
			continue
		}
		translated = append(translated, out)
	}

	if failures == len(chunks) {
		return "", fmt.Errorf("translation failed: %w", lastErr)
	}
	return strings.Join(translated, "\n"), nil
}

func (c *translateClient) translateChunk(ctx context.Context, chunk, target string) (string, error) {
	jsonBody, _ := json.Marshal(translateRequest{Text: chunk, Source: "en", Target: target})
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/translate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translate API error: %s - %s", resp.Status, string(body))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.TranslatedText == "" {
		return "", fmt.Errorf("empty translation result")
	}
	return result.TranslatedText, nil
}

// splitChunks breaks text at sentence boundaries into pieces no longer
// than maxChunkSize, falling back to hard character splits for sentences
// that are themselves too long.
func splitChunks(text string) []string {
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range splitSentences(text) {
		if current.Len() > 0 && current.Len()+len(sentence) >= maxChunkSize {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(" ")
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		chunks = append(chunks, s)
	}

	// Hard-split any chunk a single run-on sentence pushed over the limit.
	var out []string
	for _, chunk := range chunks {
		for len(chunk) > maxChunkSize*3/2 {
			cut := runeBoundary(chunk, maxChunkSize)
			out = append(out, chunk[:cut])
			chunk = chunk[cut:]
		}
		out = append(out, chunk)
	}
	return out
}

// runeBoundary backs the byte index up until it lands on the start of a
// UTF-8 rune, so a hard split never cuts a multi-byte character in half.
func runeBoundary(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func splitSentences(text string) []string {
	bounds := sentenceBoundary.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return []string{text}
	}
	var sentences []string
	start := 0
	for _, b := range bounds {
		// b[0]+1 keeps the terminating punctuation with its sentence.
		sentences = append(sentences, text[start:b[0]+1])
		start = b[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
