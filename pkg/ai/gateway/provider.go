package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agri-solve-be/pkg/ai"
)

// systemPrompt constrains the model to the exact 7-field JSON schema the
// parser expects. Changing a field name here breaks ai.ParseDiagnosis.
const systemPrompt = `You are an expert agricultural pathologist and crop disease specialist. Analyze the provided leaf/plant image for diseases, pests, or nutrient deficiencies.

Your response MUST be a valid JSON object with exactly this structure:
{
  "diagnosis": "Name of the disease or condition (e.g., 'Rice Blast (Pyricularia oryzae)' or 'Healthy - No Disease Detected')",
  "confidence": <number between 0-100>,
  "isHealthy": <boolean>,
  "cause": "Detailed explanation of what causes this condition, environmental factors, and how it spreads",
  "organicCure": "Natural and organic treatment methods, including bio-fungicides, cultural practices, and preventive measures",
  "chemicalCure": "Chemical treatment options with specific product names, concentrations, and application instructions",
  "preventionTips": "Best practices to prevent this disease in the future"
}

Guidelines:
- Be specific and accurate in your diagnosis
- If the plant appears healthy, set isHealthy to true and provide general care tips
- Include specific product names and dosages when recommending treatments
- Consider the crop type provided for context-specific recommendations
- Confidence should reflect your certainty based on image quality and visible symptoms`

type GatewayProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ ai.Provider = &GatewayProvider{}

func NewGatewayProvider(baseURL, apiKey, modelName string) *GatewayProvider {
	return &GatewayProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

func (g *GatewayProvider) Analyze(ctx context.Context, imageData string, cropHint string, opts ...ai.Option) (string, error) {
	// Low temperature favors deterministic diagnoses.
	options := &ai.Options{
		Temperature: 0.3,
	}
	for _, opt := range opts {
		opt(options)
	}

	instruction := "Analyze this plant/leaf image for any diseases, pests, or health issues. Provide detailed diagnosis and treatment recommendations."
	if cropHint != "" {
		instruction = fmt.Sprintf("Analyze this %s plant/leaf image for any diseases, pests, or health issues. Provide detailed diagnosis and treatment recommendations.", cropHint)
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: instruction},
				{Type: "image_url", ImageURL: &imageURL{URL: imageData}},
			}},
		},
		Temperature: options.Temperature,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := g.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ai.ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ai.ErrQuotaExhausted
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("ai gateway error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ai.ErrEmptyResponse
	}

	return chatResp.Choices[0].Message.Content, nil
}
