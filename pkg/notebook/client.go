// Package notebook is the thin HTTP client for the external notebook
// backend, which supplies graph data per notebook id. It is a collaborator
// of the visualization core, not part of it: the only coupling is the
// GraphData contract.
package notebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/knotbook/knot/pkg/graph"
)

// DefaultTimeout bounds a single graph fetch.
const DefaultTimeout = 30 * time.Second

// Client fetches graph data from the notebook backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the backend at baseURL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchGraph returns the graph for a notebook. The caller is responsible
// for graph size; no upper bound is enforced here.
func (c *Client) FetchGraph(ctx context.Context, notebookID string) (*graph.GraphData, error) {
	if notebookID == "" {
		return nil, fmt.Errorf("notebook: empty notebook id")
	}

	endpoint := fmt.Sprintf("%s/notebooks/%s/graph", c.baseURL, url.PathEscape(notebookID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("notebook: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notebook: fetch graph for %s: %w", notebookID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("notebook: backend returned %s for %s", resp.Status, notebookID)
	}

	var data graph.GraphData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("notebook: decode graph for %s: %w", notebookID, err)
	}
	return &data, nil
}
