package summary

import (
	"strconv"
	"strings"

	"healthcare-chatbot/internal/dialogue"
	"healthcare-chatbot/internal/knowledge"
)

type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "Low"
	SeverityModerate SeverityLevel = "Moderate"
	SeverityHigh     SeverityLevel = "High"
)

// Summary is the final rendered consultation output. It is produced once
// per session and never mutated afterwards.
type Summary struct {
	Text          string        `json:"text"`
	SeverityLevel SeverityLevel `json:"severity_level"`
	Warnings      []string      `json:"warnings"`
}

// Renderer assembles the final summary text from the matched symptoms and
// the collected follow-up answers. Rendering is a pure function: the same
// inputs always produce byte-identical output.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var baselineRecommendations = []string{
	"See a doctor for proper medical care",
	"Keep detailed symptom records",
}

// Render runs the fixed summary pipeline: restated symptoms, per-symptom
// detail, urgent warnings, recommendations, follow-up insights, severity
// and duration escalation, aggregate severity with its advice clause,
// deduplicated general recommendations and the emergency disclaimer for
// high aggregate severity.
func (r *Renderer) Render(originalText string, matched []knowledge.SymptomRecord, answers []dialogue.Answer) Summary {
	var b strings.Builder
	var warnings []string

	b.WriteString("Based on your reported symptoms: " + originalText + ". ")

	if len(matched) > 0 {
		b.WriteString("Our analysis shows: ")

		details := make([]string, 0, len(matched))
		var specific []string
		for _, rec := range matched {
			details = append(details, rec.Name+" (severity: "+rec.Severity+")")
			urgency := strings.ToLower(rec.Urgency)
			if strings.Contains(urgency, "urgent") || strings.Contains(urgency, "immediate") {
				warnings = append(warnings, "For "+rec.Name+": "+rec.Urgency)
			}
			specific = append(specific, specificRecommendations[rec.Name]...)
		}

		b.WriteString("Identified symptoms: " + strings.Join(details, ", ") + ". ")
		if len(warnings) > 0 {
			b.WriteString("URGENT WARNINGS: " + strings.Join(warnings, "; ") + ". ")
		}

		all := append(append([]string{}, baselineRecommendations...), specific...)
		b.WriteString("Recommended actions: " + strings.Join(all, ", ") + ". ")
	}

	if len(answers) > 0 {
		b.WriteString("Based on your additional information: ")
		insights := extractInsights(answers)
		if len(insights) > 0 {
			b.WriteString(strings.Join(insightTexts(insights), ", ") + ". ")

			if hasInsight(insights, insightSeverity) {
				switch {
				case severityDigitInRange(insights, 7, 10):
					b.WriteString("Given the high severity, immediate medical attention is recommended. ")
				case severityDigitInRange(insights, 4, 6):
					b.WriteString("Consider consulting a healthcare provider soon. ")
				}
			}
			if hasInsight(insights, insightDuration) {
				soFar := strings.ToLower(b.String())
				if strings.Contains(soFar, "week") || strings.Contains(soFar, "month") {
					b.WriteString("The persistent nature of symptoms suggests the need for medical evaluation. ")
				}
			}
		}
	}

	level := SeverityLow
	if len(matched) > 0 {
		total := 0
		for _, rec := range matched {
			total += severityScore(rec.Severity)
		}
		avg := float64(total) / float64(len(matched))
		switch {
		case avg > 2.5:
			level = SeverityHigh
			b.WriteString("This combination of symptoms suggests a potentially serious condition that requires immediate medical attention. ")
		case avg > 1.5:
			level = SeverityModerate
			b.WriteString("These symptoms warrant medical evaluation within the next 24-48 hours. ")
		default:
			b.WriteString("While these symptoms appear mild, monitor for any worsening. ")
		}

		seen := make(map[string]bool)
		var general []string
		for _, rec := range matched {
			for _, g := range rec.GeneralRecommendations {
				if !seen[g] {
					seen[g] = true
					general = append(general, g)
				}
			}
		}
		if len(general) > 0 {
			b.WriteString("General recommendations: " + strings.Join(general, ", ") + ". ")
		}
	}

	if level == SeverityHigh {
		b.WriteString("SEEK IMMEDIATE MEDICAL CARE if you experience: difficulty breathing, severe chest pain, confusion, or high fever with severe headache. ")
	}

	return Summary{
		Text:          strings.TrimSpace(b.String()),
		SeverityLevel: level,
		Warnings:      warnings,
	}
}

type insightKind int

const (
	insightDuration insightKind = iota
	insightSeverity
	insightPattern
	insightTreatment
)

type insight struct {
	kind insightKind
	text string
}

// extractInsights classifies each answered question by keywords in the
// question text. Duration insights are kept only when the answer names a
// duration unit; severity insights only when the answer carries a 1-10
// rating; pattern and treatment insights are always kept.
func extractInsights(answers []dialogue.Answer) []insight {
	var insights []insight
	for _, a := range answers {
		question := strings.ToLower(a.Question)
		response := strings.ToLower(a.Answer)

		switch {
		case strings.Contains(question, "how long") || strings.Contains(question, "when"):
			if strings.Contains(response, "day") || strings.Contains(response, "week") || strings.Contains(response, "month") {
				insights = append(insights, insight{insightDuration, "Duration: " + response})
			}
		case strings.Contains(question, "scale") || strings.Contains(question, "intensity"):
			if containsDigit1To10(response) {
				insights = append(insights, insight{insightSeverity, "Severity level: " + response})
			}
		case strings.Contains(question, "pattern") || strings.Contains(question, "worse"):
			insights = append(insights, insight{insightPattern, "Pattern observed: " + response})
		case strings.Contains(question, "medication") || strings.Contains(question, "taken"):
			insights = append(insights, insight{insightTreatment, "Treatment history: " + response})
		}
	}
	return insights
}

func insightTexts(insights []insight) []string {
	texts := make([]string, len(insights))
	for i, in := range insights {
		texts[i] = in.text
	}
	return texts
}

func hasInsight(insights []insight, kind insightKind) bool {
	for _, in := range insights {
		if in.kind == kind {
			return true
		}
	}
	return false
}

func severityDigitInRange(insights []insight, lo, hi int) bool {
	for _, in := range insights {
		if in.kind != insightSeverity {
			continue
		}
		for n := lo; n <= hi; n++ {
			if strings.Contains(in.text, strconv.Itoa(n)) {
				return true
			}
		}
	}
	return false
}

func containsDigit1To10(s string) bool {
	for n := 1; n <= 10; n++ {
		if strings.Contains(s, strconv.Itoa(n)) {
			return true
		}
	}
	return false
}

// severityScore bands a free-form severity string by its prefix. "Moderate
// to High" deliberately scores as Moderate; the rule base has always read
// only the leading word.
func severityScore(severity string) int {
	lower := strings.ToLower(severity)
	switch {
	case strings.HasPrefix(lower, "high"):
		return 3
	case strings.HasPrefix(lower, "moderate"):
		return 2
	default:
		return 1
	}
}
