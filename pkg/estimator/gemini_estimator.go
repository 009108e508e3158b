package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	apiKeyHeader   = "x-goog-api-key"
)

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

type (
	// FoodEstimator fills in listing details from a food name. Its output is
	// not trusted and must be validated by the caller.
	FoodEstimator interface {
		EstimateFoodDetails(ctx context.Context, name string) (domain.FoodEstimate, error)
	}

	geminiEstimator struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
		now        func() time.Time
	}

	Option func(*geminiEstimator)
)

func WithBaseURL(baseURL string) Option {
	return func(g *geminiEstimator) { g.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(client *http.Client) Option {
	return func(g *geminiEstimator) { g.httpClient = client }
}

func WithClock(now func() time.Time) Option {
	return func(g *geminiEstimator) { g.now = now }
}

func NewGeminiEstimator(apiKey, model string, opts ...Option) FoodEstimator {
	g := &geminiEstimator{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *geminiEstimator) EstimateFoodDetails(ctx context.Context, name string) (domain.FoodEstimate, error) {
	if g.apiKey == "" || g.model == "" {
		return domain.FoodEstimate{}, domain.ErrEstimatorUnavailable
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": g.prompt(name)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
		},
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.FoodEstimate{}, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.FoodEstimate{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// *url.Error carries the request URL; keep only the cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return domain.FoodEstimate{}, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.FoodEstimate{}, fmt.Errorf("%w: gemini API error: %s - %s", domain.ErrEstimationFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.FoodEstimate{}, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.FoodEstimate{}, domain.ErrEstimationFailed
	}

	raw := geminiResp.Candidates[0].Content.Parts[0].Text
	logger.FromCtx(ctx).Debug("gemini raw response", zap.String("text", raw))

	estimate, err := parseEstimate(raw)
	if err != nil {
		return domain.FoodEstimate{}, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	return estimate, nil
}

func (g *geminiEstimator) prompt(name string) string {
	return fmt.Sprintf(`You are a food detail generator for a donation system.
The user only provides the food name: %s

Respond ONLY with a JSON object with exactly these fields:
{"description": "...", "type": "...", "quantity": "...", "expiryDate": "YYYY-MM-DD", "price": 0}

Rules:
- price is a number between 5 and 50.
- expiryDate must be a realistic date for this food, today is %s.
- description is at most two short lines.
- type is one of: %s.
- quantity is a number followed by a unit, like "1 plate", "5 pcs" or "250 g".
Do not include explanations or markdown.`,
		name, g.now().Format(domain.ExpiryDateLayout), strings.Join(domain.FoodTypes, ", "))
}

// extractJSON strips markdown fences and surrounding prose from a model reply.
func extractJSON(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	match := jsonPattern.FindString(cleaned)
	if match == "" {
		return "", false
	}
	return strings.TrimSpace(match), true
}

func parseEstimate(raw string) (domain.FoodEstimate, error) {
	cleaned, ok := extractJSON(raw)
	if !ok {
		return domain.FoodEstimate{}, fmt.Errorf("no JSON object in response")
	}

	// models sometimes quote numbers, so price is decoded loosely
	var payload struct {
		Description string      `json:"description"`
		Type        string      `json:"type"`
		Quantity    interface{} `json:"quantity"`
		ExpiryDate  string      `json:"expiryDate"`
		Price       interface{} `json:"price"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.FoodEstimate{}, err
	}

	price, err := toFloat(payload.Price)
	if err != nil {
		return domain.FoodEstimate{}, err
	}

	return domain.FoodEstimate{
		Description: strings.TrimSpace(payload.Description),
		Type:        strings.ToLower(strings.TrimSpace(payload.Type)),
		Quantity:    strings.TrimSpace(toString(payload.Quantity)),
		ExpiryDate:  strings.TrimSpace(payload.ExpiryDate),
		Price:       price,
	}, nil
}

func toFloat(v interface{}) (float64, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return value, nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, nil
		}
		return strconv.ParseFloat(trimmed, 64)
	default:
		return 0, fmt.Errorf("unexpected price %v", v)
	}
}

func toString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
