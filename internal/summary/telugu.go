package summary

import (
	"context"
	"fmt"
	"strings"
)

// Translator is the external translation collaborator. An error return
// means the collaborator failed outright; a successful return may still be
// partial, which the quality gate below catches.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type TranslationStatus string

const (
	TranslationComplete TranslationStatus = "complete"
	TranslationPartial  TranslationStatus = "partial"
)

// Literal medical terms the translator tends to mangle. They are swapped
// for placeholder tokens before translation and restored with fixed Telugu
// transliterations afterwards. Order is fixed so placeholder indices are
// stable.
var preservedTerms = []struct {
	term   string
	telugu string
}{
	{"°F", " డిగ్రీ ఫారెన్‌హీట్ "},
	{"°C", " డిగ్రీ సెల్సియస్ "},
	{"COVID-19", "కోవిడ్-19"},
	{"IBS", "ఐబీఎస్"},
	{"PTSD", "పీటీఎస్డీ"},
	{"BP", "రక్తపోటు"},
	{"HR", "హృదయ రేటు"},
	{"SPO2", "ఆక్సిజన్ సంతృప్తత"},
}

const teluguPrecautions = "\n\nసాధారణ జాగ్రత్తలు:\n- తగినంత నీరు తాగండి\n- సరైన విశ్రాంతి తీసుకోండి\n- ఒత్తిడిని తగ్గించుకోండి\n- వేడి లేదా చల్లటి కంప్రెస్ వేసుకోండి"

const teluguPrecautionsShort = "\n\nసాధారణ జాగ్రత్తలు:\n- తగినంత నీరు తాగండి\n- సరైన విశ్రాంతి తీసుకోండి"

// Localizer renders a finished summary in the session language. Every
// failure mode of the translation collaborator degrades to a bilingual
// rendering; a consultation never fails because translation did.
type Localizer struct {
	translator Translator
}

func NewLocalizer(t Translator) *Localizer {
	return &Localizer{translator: t}
}

// Localize returns the display text for the summary plus the translation
// status. English summaries pass through untouched. Telugu summaries are
// translated with medical terms masked, then quality-gated: if more than
// 60% of the translated characters fall in the Telugu Unicode block the
// translation stands alone, otherwise the English original is kept
// alongside the partial Telugu.
func (l *Localizer) Localize(ctx context.Context, s Summary, language string) (string, TranslationStatus) {
	if language != "telugu" || l.translator == nil {
		return s.Text, TranslationComplete
	}

	masked := s.Text
	restore := make(map[string]string)
	for i, pt := range preservedTerms {
		placeholder := fmt.Sprintf("__TERM_%d__", i)
		if strings.Contains(masked, pt.term) {
			masked = strings.ReplaceAll(masked, pt.term, placeholder)
			restore[placeholder] = pt.telugu
		}
	}

	translated, err := l.translator.Translate(ctx, masked, "te")
	if err != nil || translated == "" {
		// With no translation there is no Telugu section to show; the
		// English sheet plus the Telugu footer is all we can offer.
		return "English:\n" + s.Text + teluguPrecautionsShort, TranslationPartial
	}
	for placeholder, telugu := range restore {
		translated = strings.ReplaceAll(translated, placeholder, telugu)
	}

	if teluguRatio(translated) > 0.6 {
		return translated + teluguPrecautions, TranslationComplete
	}
	return "English:\n" + s.Text + "\n\nTelugu:\n" + translated + teluguPrecautionsShort, TranslationPartial
}

// teluguRatio reports the fraction of runes inside the Telugu Unicode
// block (U+0C00..U+0C7F).
func teluguRatio(s string) float64 {
	total := 0
	telugu := 0
	for _, r := range s {
		total++
		if r >= 0x0C00 && r <= 0x0C7F {
			telugu++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(telugu) / float64(total)
}
