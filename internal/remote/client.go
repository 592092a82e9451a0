package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"binconv/internal/domain"
)

// Client talks to a binconvd daemon.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base (e.g. http://127.0.0.1:8080). A nil
// httpClient selects http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// Convert runs one conversion on the daemon.
func (c *Client) Convert(ctx context.Context, mode domain.Mode, input string) (string, error) {
	var out domain.ConvertResponse
	if err := c.post(ctx, "/api/convert", domain.ConvertRequest{Mode: mode, Input: input}, &out); err != nil {
		return "", err
	}
	return out.Output, nil
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("remote get %s: %s", req.URL, resp.Status)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var apiErr domain.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return fmt.Errorf("remote post %s: %s: %w", req.URL, resp.Status, err)
		}
		return conversionError(apiErr)
	}
	if resp.StatusCode/100 != 2 {
		var apiErr domain.APIError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("remote post %s: %s: %s", req.URL, resp.Status, apiErr.Error)
		}
		return fmt.Errorf("remote post %s: %s", req.URL, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func conversionError(e domain.APIError) *domain.ConversionError {
	ce := &domain.ConversionError{
		Kind:  domain.ParseErrorKind(e.Kind),
		Token: e.Token,
		Unit:  e.Unit,
	}
	if e.Index != nil {
		ce.Index = *e.Index
	}
	return ce
}

var _ domain.ConversionService = (*Client)(nil)
