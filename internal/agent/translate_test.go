package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslateServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, TranslateClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewTranslateClient(srv.URL, 5*time.Second)
}

func TestTranslateShortText(t *testing.T) {
	_, client := newTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "te", req.Target)
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "అనువాదం"})
	})

	out, err := client.Translate(context.Background(), "Hello there.", "te")
	require.NoError(t, err)
	assert.Equal(t, "అనువాదం", out)
}

func TestTranslateEmptyText(t *testing.T) {
	_, client := newTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty text")
	})

	_, err := client.Translate(context.Background(), "   ", "te")
	assert.Error(t, err)
}

func TestTranslateChunksLongText(t *testing.T) {
	var calls int32
	_, client := newTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.LessOrEqual(t, len(req.Text), maxChunkSize*3/2)
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "chunk"})
	})

	long := strings.Repeat("This sentence pads the text over the chunk limit. ", 30)
	out, err := client.Translate(context.Background(), long, "te")
	require.NoError(t, err)
	assert.Greater(t, atomic.LoadInt32(&calls), int32(1))
	assert.Contains(t, out, "chunk")
}

func TestTranslatePartialFailureKeepsOriginalChunk(t *testing.T) {
	var calls int32
	_, client := newTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "translated"})
	})

	long := strings.Repeat("Another filler sentence for the chunk splitter here. ", 30)
	out, err := client.Translate(context.Background(), long, "te")
	require.NoError(t, err)
	// First chunk carried over untranslated, the rest translated.
	assert.Contains(t, out, "Another filler sentence")
	assert.Contains(t, out, "translated")
}

func TestTranslateTotalFailure(t *testing.T) {
	_, client := newTranslateServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	_, err := client.Translate(context.Background(), "Hello.", "te")
	assert.Error(t, err)
}

func TestSplitChunksHardSplitKeepsRunesWhole(t *testing.T) {
	// One run-on "sentence" of multi-byte runes forces the hard-split path.
	text := strings.Repeat("వైద్య సలహా కోసం డాక్టర్‌ను సంప్రదించండి ", 40)
	chunks := splitChunks(strings.TrimSpace(text))

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "hard split cut a rune: %q", chunk)
	}
	assert.Equal(t, strings.TrimSpace(text), strings.Join(chunks, ""))
}

func TestSplitChunksSentenceBoundaries(t *testing.T) {
	text := strings.Repeat("One short sentence. ", 40)
	chunks := splitChunks(strings.TrimSpace(text))

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), maxChunkSize*3/2)
		assert.True(t, strings.HasSuffix(chunk, "."), "chunk should end at a sentence boundary: %q", chunk)
	}
}
