package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// LabelScore is one entry of a ranked classification result.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client provides access to a remote text-classification model.
type Client interface {
	// Classify sends raw text and returns the model's ranked label scores.
	// A single bounded attempt is made; no retries.
	Classify(ctx context.Context, text string) ([]LabelScore, error)

	// Available reports whether the remote tier is configured and reachable.
	Available(ctx context.Context) bool
}

// inferenceClient implements Client against a hosted inference HTTP API
// (POST {endpoint}/{model} with {"inputs": text}).
type inferenceClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewInferenceClient creates a Client for the configured hosted model.
func NewInferenceClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &inferenceClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// inferenceRequest is the JSON body sent to the model endpoint.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

func (c *inferenceClient) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	scores, err := c.doRequest(ctx, text)

	latency := time.Since(start).Milliseconds()
	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = ErrUnavailable
		}
		c.observer.OnCallComplete(CallEvent{
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return scores, nil
}

func (c *inferenceClient) doRequest(ctx context.Context, text string) ([]LabelScore, error) {
	data, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/" + c.cfg.Model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, httpResp.StatusCode, string(respBody))
	}

	return parseLabelScores(respBody)
}

// parseLabelScores accepts both response shapes the API emits: a ranked
// list, or that list wrapped in a single-element outer array.
func parseLabelScores(body []byte) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, ErrInvalidOutput
		}
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil || len(flat) == 0 {
		return nil, ErrInvalidOutput
	}
	return flat, nil
}

func (c *inferenceClient) Available(ctx context.Context) bool {
	if !c.cfg.Enabled {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/"+c.cfg.Model, nil)
	if err != nil {
		return false
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
