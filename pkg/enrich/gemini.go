package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"

	// The generative API answers 503 when overloaded; that is the only
	// retryable failure. Delay scales linearly with the attempt number.
	maxAttempts = 3
	backoffStep = 500 * time.Millisecond
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// GeminiEnricher rewrites replies through the Gemini generateContent API.
type GeminiEnricher struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	sleep   func(time.Duration)
}

type Option func(*GeminiEnricher)

func WithBaseURL(url string) Option {
	return func(e *GeminiEnricher) { e.baseURL = url }
}

func WithHTTPClient(client *http.Client) Option {
	return func(e *GeminiEnricher) { e.client = client }
}

// WithSleep overrides the backoff delay, so tests run without real waiting.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *GeminiEnricher) { e.sleep = sleep }
}

func NewGeminiEnricher(apiKey, model string, opts ...Option) *GeminiEnricher {
	if model == "" {
		model = defaultModel
	}
	e := &GeminiEnricher{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rewrite asks the model to rephrase the base reply. Overload (503) is
// retried at most maxAttempts times with a growing delay; any other failure
// returns immediately so the caller can fall back to the base reply.
func (e *GeminiEnricher) Rewrite(ctx context.Context, ec Context) (string, error) {
	prompt := buildPrompt(ec)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, status, err := e.generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if status != http.StatusServiceUnavailable {
			return "", err
		}
		if attempt < maxAttempts {
			e.sleep(backoffStep * time.Duration(attempt))
		}
	}
	return "", lastErr
}

func (e *GeminiEnricher) generate(ctx context.Context, prompt string) (string, int, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}, Role: "user"},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", 0, err
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("x-goog-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := e.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", res.StatusCode, err
	}

	if res.StatusCode != http.StatusOK {
		return "", res.StatusCode, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", res.StatusCode, err
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", res.StatusCode, fmt.Errorf("empty response from model")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, res.StatusCode, nil
}

func buildPrompt(ec Context) string {
	var b strings.Builder
	b.WriteString("You are Mentora, a helpful learning assistant.\n")
	fmt.Fprintf(&b, "The user asked: %q\n", ec.UserMessage)

	if ec.Course != nil {
		b.WriteString("Here is the raw course info:\n")
		fmt.Fprintf(&b, "Title: %s\n", ec.Course.Title)
		fmt.Fprintf(&b, "Provider: %s\n", orNA(ec.Course.Provider))
		fmt.Fprintf(&b, "Level: %s\n", orNA(ec.Course.Level))
		fmt.Fprintf(&b, "Price: %.2f\n", ec.Course.Price)
		fmt.Fprintf(&b, "Duration: %s\n", orNA(ec.Course.Duration))
		fmt.Fprintf(&b, "Rating: %.1f\n", ec.Course.Rating)
		fmt.Fprintf(&b, "Reviews: %d\n", ec.Course.NumReviews)
		fmt.Fprintf(&b, "Subscribers: %d\n", ec.Course.NumSubscribers)
	}

	if len(ec.RecentHistory) > 0 {
		b.WriteString("Recent queries:\n")
		for _, h := range ec.RecentHistory {
			fmt.Fprintf(&b, "- %s\n", h.Message)
		}
	}

	fmt.Fprintf(&b, "\nBase Answer: %s\n", ec.BaseReply)
	b.WriteString("\nRewrite this as a short, friendly conversational reply:\n")
	b.WriteString("- Natural phrasing (not robotic).\n")
	b.WriteString("- Highlight the course in a positive way.\n")
	b.WriteString("- Keep it under 4 sentences.\n")
	b.WriteString("- Add 1-2 emojis where natural.\n")
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
