package libs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dental-store/config"
)

// SanityClient queries the headless CMS's data API. The core treats the CMS
// as an opaque data source: callers hand in a GROQ query and get the raw
// result back for normalization.
type SanityClient struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	HTTPClient *http.Client
}

func NewSanityClient() *SanityClient {
	return &SanityClient{
		ProjectID:  config.AppConfig.SanityProject,
		Dataset:    config.AppConfig.SanityDataset,
		APIVersion: config.AppConfig.SanityVersion,
		HTTPClient: &http.Client{Timeout: config.AppConfig.SanityTimeout},
	}
}

func (c *SanityClient) queryURL(groq string) string {
	return fmt.Sprintf(
		"https://%s.apicdn.sanity.io/v%s/data/query/%s?query=%s",
		c.ProjectID, c.APIVersion, c.Dataset, url.QueryEscape(groq),
	)
}

// Query runs a GROQ query and returns the raw "result" payload.
func (c *SanityClient) Query(ctx context.Context, groq string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(groq), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CMS request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("CMS request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CMS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CMS returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode CMS response: %w", err)
	}

	return envelope.Result, nil
}

// QueryInto runs a GROQ query and decodes the result into out.
func (c *SanityClient) QueryInto(ctx context.Context, groq string, out interface{}) error {
	result, err := c.Query(ctx, groq)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("failed to decode CMS result: %w", err)
	}
	return nil
}
