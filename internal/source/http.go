package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 8 << 20

// HTTP fetches a project data file from a URL.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP creates an HTTP source. A nil client uses http.DefaultClient.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{url: url, client: client}
}

func (h *HTTP) Load(ctx context.Context) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fail(h.String(), err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fail(h.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fail(h.String(), fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fail(h.String(), fmt.Errorf("failed to read body: %w", err))
	}

	projects, err := Decode(data, FormatFromName(h.url))
	if err != nil {
		return nil, fail(h.String(), err)
	}
	return projects, nil
}

func (h *HTTP) String() string {
	return h.url
}
