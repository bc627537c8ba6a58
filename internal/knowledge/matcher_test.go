package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedNames(records []SymptomRecord) []string {
	if len(records) == 0 {
		return nil
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

func TestMatcherBase(t *testing.T) {
	m := NewMatcher(Base())

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single word symptom as token",
			input: "I have a fever and headache",
			want:  []string{"fever", "headache"},
		},
		{
			name:  "substring without word boundary excluded",
			input: "I feel feverish today",
			want:  nil,
		},
		{
			name:  "token boundary inside longer word",
			input: "I keep coughing all night",
			want:  nil,
		},
		{
			name:  "multi word contiguous",
			input: "severe chest pain since morning",
			want:  []string{"chest pain"},
		},
		{
			name:  "multi word out of order excluded",
			input: "pain in my chest",
			want:  nil,
		},
		{
			name:  "multi word non adjacent excluded",
			input: "chest hurts and pain elsewhere",
			want:  nil,
		},
		{
			name:  "case insensitive",
			input: "FEVER and Nausea",
			want:  []string{"fever", "nausea"},
		},
		{
			name:  "knowledge base order not input order",
			input: "headache first then fever",
			want:  []string{"fever", "headache"},
		},
		{
			name:  "no known symptom",
			input: "I feel great",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.input)
			assert.Equal(t, tt.want, matchedNames(got))
		})
	}
}

func TestMatcherOverlappingPatterns(t *testing.T) {
	// Overlapping records are matched independently; containment does not
	// suppress the shorter pattern.
	fixture := []SymptomRecord{
		{Name: "pain", Severity: "Moderate"},
		{Name: "chest pain", Severity: "High"},
	}
	m := NewMatcher(fixture)

	got := m.Match("I have chest pain")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"pain", "chest pain"}, matchedNames(got))
}

func TestMatcherDeterministic(t *testing.T) {
	m := NewMatcher(Base())
	input := "fever, cough and chest pain for two days"

	first := matchedNames(m.Match(input))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, matchedNames(m.Match(input)))
	}
}
