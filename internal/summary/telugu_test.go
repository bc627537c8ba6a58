package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTranslator struct {
	fn func(text, target string) (string, error)
}

func (s *stubTranslator) Translate(_ context.Context, text, target string) (string, error) {
	return s.fn(text, target)
}

func TestLocalizeEnglishPassthrough(t *testing.T) {
	l := NewLocalizer(&stubTranslator{fn: func(text, target string) (string, error) {
		t.Fatal("translator must not be called for english")
		return "", nil
	}})

	text, status := l.Localize(context.Background(), Summary{Text: "all good"}, "english")
	assert.Equal(t, "all good", text)
	assert.Equal(t, TranslationComplete, status)
}

func TestLocalizeTeluguComplete(t *testing.T) {
	teluguText := strings.Repeat("జ్వరం తీవ్రత ఎక్కువగా ఉంది ", 5)
	l := NewLocalizer(&stubTranslator{fn: func(text, target string) (string, error) {
		assert.Equal(t, "te", target)
		return teluguText, nil
	}})

	text, status := l.Localize(context.Background(), Summary{Text: "High fever detected."}, "telugu")
	assert.Equal(t, TranslationComplete, status)
	assert.True(t, strings.HasPrefix(text, teluguText))
	assert.Contains(t, text, "సాధారణ జాగ్రత్తలు")
	assert.Contains(t, text, "ఒత్తిడిని తగ్గించుకోండి") // long footer only
}

func TestLocalizeLowTeluguContentFallsBackBilingual(t *testing.T) {
	// Echoing translator simulates a degraded translation that left most of
	// the text in ASCII.
	l := NewLocalizer(&stubTranslator{fn: func(text, target string) (string, error) {
		return text, nil
	}})

	original := "Temperature reached 103°F during the night."
	text, status := l.Localize(context.Background(), Summary{Text: original}, "telugu")

	assert.Equal(t, TranslationPartial, status)
	assert.Contains(t, text, "English:\n"+original)
	assert.Contains(t, text, "Telugu:\n")
	// The English section keeps the literal reading untouched.
	assert.Contains(t, text, "103°F")
	assert.NotContains(t, text, "__TERM_")
}

func TestLocalizePreservedTermsRestored(t *testing.T) {
	var sent string
	l := NewLocalizer(&stubTranslator{fn: func(text, target string) (string, error) {
		sent = text
		return text, nil
	}})

	text, _ := l.Localize(context.Background(), Summary{Text: "Monitor BP and watch for COVID-19, temp 103°F."}, "telugu")

	// The translator never sees the literal terms, only placeholders.
	assert.NotContains(t, sent, "°F")
	assert.NotContains(t, sent, "COVID-19")
	assert.NotContains(t, sent, "BP")
	assert.Contains(t, sent, "__TERM_0__")

	// Placeholders come back as the fixed transliterations.
	assert.Contains(t, text, "కోవిడ్-19")
	assert.Contains(t, text, "రక్తపోటు")
	assert.NotContains(t, text, "__TERM_")
}

func TestLocalizeTranslatorFailure(t *testing.T) {
	l := NewLocalizer(&stubTranslator{fn: func(text, target string) (string, error) {
		return "", errors.New("service unavailable")
	}})

	original := "Fever and cough for two days."
	text, status := l.Localize(context.Background(), Summary{Text: original}, "telugu")

	assert.Equal(t, TranslationPartial, status)
	assert.Contains(t, text, "English:\n"+original)
	assert.Contains(t, text, "సాధారణ జాగ్రత్తలు")
}

func TestLocalizeNilTranslator(t *testing.T) {
	l := NewLocalizer(nil)
	text, status := l.Localize(context.Background(), Summary{Text: "plain"}, "telugu")
	assert.Equal(t, "plain", text)
	assert.Equal(t, TranslationComplete, status)
}
