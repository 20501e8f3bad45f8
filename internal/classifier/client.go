package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is the scoring service response.
type Result struct {
	AnomalyScore       float64         `json:"anomaly_score"`
	AnomalyThreshold   float64         `json:"anomaly_threshold"`
	ClassProbabilities []float64       `json:"class_probabilities"`
	CycleClass         string          `json:"cycle_class"`
	Derived            Derived         `json:"derived"`
	IsAnomaly          bool            `json:"is_anomaly"`
	PhaseSummary       json.RawMessage `json:"phase_summary,omitempty"`
	Regressions        json.RawMessage `json:"regressions,omitempty"`
	Summary            json.RawMessage `json:"summary,omitempty"`
}

type Derived struct {
	MaxPowerKW float64 `json:"max_power_kw"`
}

// Client talks to the remote anomaly/classification service.
type Client struct {
	BaseURL string
	Client  *http.Client
	Cache   *ResponseCache
}

// NewClient creates a client. If baseURL is empty, defaults to "http://127.0.0.1:5000".
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// ServiceError is a failed call to the scoring service.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Classify posts the payload to {base}/api/run-ml and decodes the verdict.
func (c *Client) Classify(ctx context.Context, p Payload) (*Result, error) {
	if len(p.SimulationData) == 0 {
		return nil, fmt.Errorf("payload has no simulation data")
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	key := CacheKey(body)
	if cached, ok := c.Cache.Get(key); ok {
		log.Printf("[Classifier] Cache hit: class=%s samples=%d", cached.CycleClass, len(p.SimulationData))
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL + "/api/run-ml")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Printf("[Classifier] Request: POST %s (samples=%d, bytes=%d)", u.Path, len(p.SimulationData), len(body))

	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[Classifier] Request failed: %v (duration: %v)", err, duration)
		return nil, &ServiceError{
			Code:    "SERVICE_UNAVAILABLE",
			Message: fmt.Sprintf("classification service unreachable: %v", err),
		}
	}
	defer resp.Body.Close()

	log.Printf("[Classifier] Response: %d (duration: %v)", resp.StatusCode, duration)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Code:       "SERVICE_UNAVAILABLE",
			Message:    fmt.Sprintf("classification service returned %d", resp.StatusCode),
		}
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[Classifier] Error: %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Code:       "CLASSIFIER_ERROR",
			Message:    fmt.Sprintf("classification service returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	log.Printf("[Classifier] Success: class=%s anomaly=%v score=%.4f", result.CycleClass, result.IsAnomaly, result.AnomalyScore)

	c.Cache.Set(key, &result)
	return &result, nil
}
