package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"scholarship-tracker-go/internal/httpx"
	"scholarship-tracker-go/internal/model"
)

// APISource queries a scholarship search API that accepts a JSON filter and
// returns a list of scholarships.
type APISource struct {
	name   string
	url    string
	client *httpx.Client
}

type apiQuery struct {
	Level []string `json:"level"`
	Type  []string `json:"type"`
}

type apiResponse struct {
	Scholarships []apiScholarship `json:"scholarships"`
}

type apiScholarship struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ApplyURL    string `json:"apply_url"`
	Amount      string `json:"amount"`
	Deadline    string `json:"deadline"`
}

func NewAPI(name, url string, client *httpx.Client) *APISource {
	return &APISource{name: name, url: url, client: client}
}

func (a *APISource) Name() string {
	return a.name
}

func (a *APISource) Fetch(ctx context.Context) ([]model.Scholarship, error) {
	query, err := json.Marshal(apiQuery{
		Level: []string{"Graduate", "Post Graduate"},
		Type:  []string{"National", "International"},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", a.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", a.name, resp.Status)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", a.name, err)
	}

	records := make([]model.Scholarship, 0, len(parsed.Scholarships))
	for _, item := range parsed.Scholarships {
		if item.Title == "" {
			continue
		}
		url := item.ApplyURL
		if url == "" {
			url = a.url
		}
		records = append(records, model.Scholarship{
			Title:       item.Title,
			Description: item.Description,
			Source:      a.name,
			URL:         url,
			Amount:      item.Amount,
			Deadline:    item.Deadline,
		})
	}
	return records, nil
}
