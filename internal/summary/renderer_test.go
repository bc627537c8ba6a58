package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-chatbot/internal/dialogue"
	"healthcare-chatbot/internal/knowledge"
)

func recordsByName(t *testing.T, names ...string) []knowledge.SymptomRecord {
	t.Helper()
	base := knowledge.Base()
	var out []knowledge.SymptomRecord
	for _, name := range names {
		found := false
		for _, r := range base {
			if r.Name == name {
				out = append(out, r)
				found = true
				break
			}
		}
		require.True(t, found, "unknown symptom %q", name)
	}
	return out
}

func TestRenderFeverAndHeadache(t *testing.T) {
	r := NewRenderer()
	sum := r.Render("I have a fever and headache", recordsByName(t, "fever", "headache"), nil)

	assert.Contains(t, sum.Text, "Based on your reported symptoms: I have a fever and headache.")
	assert.Contains(t, sum.Text, "fever (severity: Moderate to High)")
	assert.Contains(t, sum.Text, "headache (severity: Mild to Moderate)")
	assert.Contains(t, sum.Text, "See a doctor for proper medical care")
	assert.Contains(t, sum.Text, "Keep detailed symptom records")
	assert.Contains(t, sum.Text, "Monitor temperature every 4 hours")

	// fever scores 2 (band read by prefix), headache scores 1: average 1.5
	// stays Low.
	assert.Equal(t, SeverityLow, sum.SeverityLevel)
	assert.Contains(t, sum.Text, "While these symptoms appear mild")

	// Both carry urgency markers, so both land in the warning block.
	require.Len(t, sum.Warnings, 2)
	assert.Contains(t, sum.Text, "URGENT WARNINGS:")
}

func TestRenderChestPainIsHigh(t *testing.T) {
	r := NewRenderer()
	sum := r.Render("chest pain", recordsByName(t, "chest pain"), nil)

	assert.Equal(t, SeverityHigh, sum.SeverityLevel)
	require.Len(t, sum.Warnings, 1)
	assert.Equal(t, "For chest pain: Seek immediate emergency care", sum.Warnings[0])
	assert.Contains(t, sum.Text, "SEEK IMMEDIATE MEDICAL CARE if you experience")
	assert.Contains(t, sum.Text, "requires immediate medical attention")
}

func TestRenderSeverityBanding(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		symptoms []string
		want     SeverityLevel
	}{
		{"single mild symptom", []string{"headache"}, SeverityLow},
		{"single moderate band", []string{"fever"}, SeverityModerate},
		{"high plus moderate", []string{"chest pain", "dizziness"}, SeverityModerate},
		{"two high symptoms", []string{"chest pain", "bleeding"}, SeverityHigh},
		{"moderate-to-high reads as moderate", []string{"swelling"}, SeverityModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := r.Render("test", recordsByName(t, tt.symptoms...), nil)
			assert.Equal(t, tt.want, sum.SeverityLevel)
		})
	}
}

func TestRenderNoMatchedSymptoms(t *testing.T) {
	r := NewRenderer()
	sum := r.Render("something vague", nil, nil)

	assert.Equal(t, SeverityLow, sum.SeverityLevel)
	assert.Empty(t, sum.Warnings)
	assert.Equal(t, "Based on your reported symptoms: something vague.", sum.Text)
}

func TestRenderInsightExtraction(t *testing.T) {
	r := NewRenderer()
	matched := recordsByName(t, "headache")

	tests := []struct {
		name       string
		answers    []dialogue.Answer
		wantInText []string
		notInText  []string
	}{
		{
			name: "duration kept with unit word",
			answers: []dialogue.Answer{
				{Question: "When did these symptoms first appear?", Answer: "about three days ago"},
			},
			wantInText: []string{"Duration: about three days ago"},
		},
		{
			name: "duration dropped without unit word",
			answers: []dialogue.Answer{
				{Question: "When did these symptoms first appear?", Answer: "recently"},
			},
			notInText: []string{"Duration:"},
		},
		{
			name: "high severity rating escalates",
			answers: []dialogue.Answer{
				{Question: "On a scale of 1-10, how severe is your pain?", Answer: "8"},
			},
			wantInText: []string{"Severity level: 8", "immediate medical attention is recommended"},
		},
		{
			name: "mid severity rating suggests consulting soon",
			answers: []dialogue.Answer{
				{Question: "On a scale of 1-10, how severe is your pain?", Answer: "it is a 5"},
			},
			wantInText: []string{"Consider consulting a healthcare provider soon"},
		},
		{
			name: "severity dropped without a rating digit",
			answers: []dialogue.Answer{
				{Question: "On a scale of 1-10, how severe is your pain?", Answer: "pretty bad"},
			},
			notInText: []string{"Severity level:"},
		},
		{
			name: "pattern and treatment always kept",
			answers: []dialogue.Answer{
				{Question: "What makes the pain better or worse?", Answer: "worse at night"},
				{Question: "Have you taken any medications for these symptoms?", Answer: "paracetamol"},
			},
			wantInText: []string{"Pattern observed: worse at night", "Treatment history: paracetamol"},
		},
		{
			name: "week-long duration adds persistence clause",
			answers: []dialogue.Answer{
				{Question: "How long have you had the fever?", Answer: "over two weeks now"},
			},
			wantInText: []string{"Duration: over two weeks now", "persistent nature of symptoms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := r.Render("headache", matched, tt.answers)
			for _, want := range tt.wantInText {
				assert.Contains(t, sum.Text, want)
			}
			for _, not := range tt.notInText {
				assert.NotContains(t, sum.Text, not)
			}
		})
	}
}

func TestRenderAnswersWithoutInsights(t *testing.T) {
	r := NewRenderer()
	answers := []dialogue.Answer{
		{Question: "Do your symptoms affect your daily activities?", Answer: "not really"},
	}

	sum := r.Render("headache", recordsByName(t, "headache"), answers)
	// The lead-in is emitted whenever answers exist, even when none of them
	// produce a retained insight.
	assert.Contains(t, sum.Text, "Based on your additional information:")
}

func TestRenderGeneralRecommendationsDeduped(t *testing.T) {
	r := NewRenderer()
	fixture := []knowledge.SymptomRecord{
		{Name: "a", Severity: "Mild", Urgency: "none", GeneralRecommendations: []string{"Rest well", "Stay hydrated"}},
		{Name: "b", Severity: "Mild", Urgency: "none", GeneralRecommendations: []string{"Stay hydrated", "Eat light meals"}},
	}

	sum := r.Render("test", fixture, nil)
	assert.Equal(t, 1, strings.Count(sum.Text, "Stay hydrated"))
	assert.Contains(t, sum.Text, "General recommendations: Rest well, Stay hydrated, Eat light meals.")
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer()
	matched := recordsByName(t, "fever", "cough", "chest pain")
	answers := []dialogue.Answer{
		{Question: "When did these symptoms first appear?", Answer: "two days ago"},
		{Question: "On a scale of 1-10, how severe is your pain?", Answer: "7"},
	}

	first := r.Render("fever cough chest pain", matched, answers)
	second := r.Render("fever cough chest pain", matched, answers)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Text, second.Text)
}
