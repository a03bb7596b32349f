// Package astra is a minimal REST client to the AstraDB Data API, covering
// only vector similarity search over an existing collection.
package astra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"personachat/internal/domain"
)

// Client queries an AstraDB namespace over the JSON Data API. Similarity
// ranking and tie-breaking are entirely the store's responsibility.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// Config configures the Astra client. Endpoint and token come from the
// named environment variables.
type Config struct {
	EndpointEnv string
	TokenEnv    string
	Namespace   string
	Timeout     time.Duration
}

// APIError is a non-2xx or malformed response from the store. It keeps the
// raw body so operators can tell "no documents" apart from "store broken".
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("astra: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("astra: status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

// NewClient creates a search client for one namespace.
func NewClient(cfg Config) (*Client, error) {
	if cfg.EndpointEnv == "" {
		cfg.EndpointEnv = "ASTRA_DB_API_ENDPOINT"
	}
	if cfg.TokenEnv == "" {
		cfg.TokenEnv = "ASTRA_DB_APPLICATION_TOKEN"
	}
	endpoint := os.Getenv(cfg.EndpointEnv)
	if endpoint == "" {
		return nil, fmt.Errorf("missing Astra endpoint in env %s", cfg.EndpointEnv)
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("missing Astra token in env %s", cfg.TokenEnv)
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "default_keyspace"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: fmt.Sprintf("%s/api/json/v1/%s", strings.TrimRight(endpoint, "/"), namespace),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type findRequest struct {
	Find struct {
		Sort    map[string]any `json:"sort"`
		Options struct {
			Limit int `json:"limit"`
		} `json:"options"`
	} `json:"find"`
}

type findResponse struct {
	Data struct {
		Documents []domain.Document `json:"documents"`
	} `json:"data"`
}

// Search returns up to limit documents from the collection, ordered by the
// store's vector similarity to the given embedding.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, limit int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = 3
	}
	var body findRequest
	body.Find.Sort = map[string]any{"$vector": vector}
	body.Find.Options.Limit = limit

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/%s", c.baseURL, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-cassandra-token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("astra find: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(payload)}
	}
	var out findResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(payload), Err: err}
	}
	return out.Data.Documents, nil
}
