package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "json fence",
			content: "```json\n{\"diagnosis\":\"Leaf Blast\"}\n```",
			want:    `{"diagnosis":"Leaf Blast"}`,
		},
		{
			name:    "bare fence",
			content: "```\n{\"diagnosis\":\"Leaf Blast\"}\n```",
			want:    `{"diagnosis":"Leaf Blast"}`,
		},
		{
			name:    "no fence passes through",
			content: `{"diagnosis":"Leaf Blast"}`,
			want:    `{"diagnosis":"Leaf Blast"}`,
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  \n{\"diagnosis\":\"Leaf Blast\"}\n  ",
			want:    `{"diagnosis":"Leaf Blast"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.content))
		})
	}
}

func TestParseDiagnosisFencedAndPlainAgree(t *testing.T) {
	plain := `{"diagnosis":"Healthy","isHealthy":true}`
	fenced := "```json\n" + plain + "\n```"

	assert.Equal(t, ParseDiagnosis(plain), ParseDiagnosis(fenced))
}

func TestParseDiagnosisFullReply(t *testing.T) {
	content := `{
		"diagnosis": "Late Blight",
		"confidence": 92.5,
		"isHealthy": false,
		"cause": "Phytophthora infestans",
		"organicCure": "Remove infected leaves, apply copper fungicide",
		"chemicalCure": "Metalaxyl + Mancozeb spray",
		"preventionTips": "Avoid overhead irrigation"
	}`

	d := ParseDiagnosis(content)

	assert.Equal(t, "Late Blight", d.Diagnosis)
	assert.Equal(t, 92.5, d.Confidence)
	assert.False(t, d.IsHealthy)
	assert.Equal(t, "Phytophthora infestans", d.Cause)
	assert.Equal(t, "Remove infected leaves, apply copper fungicide", d.OrganicCure)
	assert.Equal(t, "Metalaxyl + Mancozeb spray", d.ChemicalCure)
	assert.Equal(t, "Avoid overhead irrigation", d.PreventionTips)
}

func TestParseDiagnosisDefaultsMissingFields(t *testing.T) {
	d := ParseDiagnosis(`{}`)

	assert.Equal(t, "Unknown Condition", d.Diagnosis)
	assert.Equal(t, float64(75), d.Confidence)
	assert.False(t, d.IsHealthy)
	assert.Equal(t, "Unable to determine cause", d.Cause)
	assert.Equal(t, "Consult a local agricultural expert", d.OrganicCure)
	assert.Equal(t, "Professional diagnosis recommended", d.ChemicalCure)
	assert.Empty(t, d.PreventionTips)
}

func TestParseDiagnosisKeepsExplicitZeroConfidence(t *testing.T) {
	d := ParseDiagnosis(`{"diagnosis":"Healthy","confidence":0,"isHealthy":true}`)

	assert.Equal(t, "Healthy", d.Diagnosis)
	assert.Equal(t, float64(0), d.Confidence)
	assert.True(t, d.IsHealthy)
}

func TestParseDiagnosisUnparseableFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "prose reply", content: "I cannot analyze this image."},
		{name: "truncated json", content: `{"diagnosis":"Leaf`},
		{name: "empty string", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDiagnosis(tt.content)
			assert.Equal(t, InconclusiveDiagnosis(), d)
			assert.Equal(t, "Analysis Inconclusive", d.Diagnosis)
			assert.Equal(t, float64(0), d.Confidence)
		})
	}
}
