package formatter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"scholarship-tracker-go/internal/config"
	"scholarship-tracker-go/internal/httpx"
	"scholarship-tracker-go/internal/model"
)

// Gemini formats the digest through the generateContent REST endpoint.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	client   *httpx.Client
}

func NewGemini(cfg *config.GeminiConfig, client *httpx.Client) *Gemini {
	return &Gemini{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   client,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const digestPrompt = `Create a comprehensive scholarship update for Indian students. Format the output in clean HTML with proper styling.
Use this exact structure for each scholarship:

<div class="scholarship">
    <h2>[SCHOLARSHIP_TITLE]</h2>
    <p class="deadline">Deadline: [DEADLINE]</p>
    <p class="amount">Amount: [AMOUNT]</p>
    <div class="details">
        <h3>Eligibility:</h3>
        <ul>
            [ELIGIBILITY_POINTS]
        </ul>
        <h3>How to Apply:</h3>
        <p>[APPLICATION_PROCESS]</p>
        <p><a href="[URL]" target="_blank">Apply Now</a></p>
    </div>
</div>

Organize scholarships into these categories, each with its own section:

1. Urgent Deadlines (Next 30 Days)
2. Government Scholarships
3. Program-Specific (Bachelor's, Master's, PhD)
4. Special Categories (Merit-based, Need-based, Women-specific)
5. International Opportunities

Make deadlines stand out (use class="deadline"), format amounts clearly
(use class="amount"), list eligibility criteria as bullet points, and include
direct application links.

Scholarships data: %s`

// Format asks the model for the categorized HTML digest of the given records.
func (g *Gemini) Format(ctx context.Context, records []model.Scholarship) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding scholarship data: %w", err)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: fmt.Sprintf(digestPrompt, string(data))}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.endpoint, g.model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req, body)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gemini API %d: %s", resp.StatusCode, string(b))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned blank content")
	}
	return text, nil
}
