package ai

import (
	"encoding/json"
	"strings"
)

// Diagnosis is the normalized analysis result. Every field is always set
// after ParseDiagnosis; optional fields from the model are defaulted.
type Diagnosis struct {
	Diagnosis      string  `json:"diagnosis"`
	Confidence     float64 `json:"confidence"`
	IsHealthy      bool    `json:"isHealthy"`
	Cause          string  `json:"cause"`
	OrganicCure    string  `json:"organicCure"`
	ChemicalCure   string  `json:"chemicalCure"`
	PreventionTips string  `json:"preventionTips"`
}

// rawDiagnosis models the model reply as a partial record: absent fields stay
// nil so defaulting is explicit rather than guessed from zero values.
type rawDiagnosis struct {
	Diagnosis      *string  `json:"diagnosis"`
	Confidence     *float64 `json:"confidence"`
	IsHealthy      *bool    `json:"isHealthy"`
	Cause          *string  `json:"cause"`
	OrganicCure    *string  `json:"organicCure"`
	ChemicalCure   *string  `json:"chemicalCure"`
	PreventionTips *string  `json:"preventionTips"`
}

// Defaults applied when the model reply parses but omits a field.
const (
	defaultDiagnosis    = "Unknown Condition"
	defaultCause        = "Unable to determine cause"
	defaultOrganicCure  = "Consult a local agricultural expert"
	defaultChemicalCure = "Professional diagnosis recommended"
	defaultConfidence   = 75
)

// InconclusiveDiagnosis is returned when the model reply cannot be parsed at
// all. It is a normal success from the caller's point of view so the UI
// always has something to show.
func InconclusiveDiagnosis() *Diagnosis {
	return &Diagnosis{
		Diagnosis:      "Analysis Inconclusive",
		Confidence:     0,
		IsHealthy:      false,
		Cause:          "Unable to analyze the image. Please try with a clearer image of the affected plant part.",
		OrganicCure:    "Consult with a local agricultural extension officer for proper diagnosis.",
		ChemicalCure:   "Professional diagnosis recommended before chemical treatment.",
		PreventionTips: "Ensure good image quality with proper lighting for accurate analysis.",
	}
}

// ParseDiagnosis turns a raw model reply into a Diagnosis. The reply may be
// wrapped in markdown code fences (```json or ```); those are stripped before
// parsing. An unparseable reply degrades to InconclusiveDiagnosis instead of
// an error.
func ParseDiagnosis(content string) *Diagnosis {
	cleaned := StripCodeFences(content)

	var raw rawDiagnosis
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return InconclusiveDiagnosis()
	}

	d := &Diagnosis{
		Diagnosis:    defaultDiagnosis,
		Confidence:   defaultConfidence,
		IsHealthy:    false,
		Cause:        defaultCause,
		OrganicCure:  defaultOrganicCure,
		ChemicalCure: defaultChemicalCure,
	}
	if raw.Diagnosis != nil {
		d.Diagnosis = *raw.Diagnosis
	}
	if raw.Confidence != nil {
		d.Confidence = *raw.Confidence
	}
	if raw.IsHealthy != nil {
		d.IsHealthy = *raw.IsHealthy
	}
	if raw.Cause != nil {
		d.Cause = *raw.Cause
	}
	if raw.OrganicCure != nil {
		d.OrganicCure = *raw.OrganicCure
	}
	if raw.ChemicalCure != nil {
		d.ChemicalCure = *raw.ChemicalCure
	}
	if raw.PreventionTips != nil {
		d.PreventionTips = *raw.PreventionTips
	}

	return d
}

// StripCodeFences removes a leading ```json or ``` marker and a trailing ```
// marker, then trims whitespace. Content without fences passes through
// unchanged apart from trimming.
func StripCodeFences(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
