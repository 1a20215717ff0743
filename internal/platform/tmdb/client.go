// Package tmdb reads movie metadata from The Movie Database v3 API.
package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"hobbiesapi/internal/platform/upstream"
)

type Client struct {
	up      *upstream.Client
	baseURL string
	apiKey  string
}

func NewClient(up *upstream.Client, baseURL, apiKey string) *Client {
	return &Client{
		up:      up,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// searchResponse matches search/movie
type searchResponse struct {
	Page         int             `json:"page"`
	Results      json.RawMessage `json:"results"`
	TotalResults int             `json:"total_results"`
}

// Movie returns the /movie/{id} body as is.
func (c *Client) Movie(ctx context.Context, id string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/movie/%s?api_key=%s",
		c.baseURL, url.PathEscape(id), url.QueryEscape(c.apiKey))

	body, err := c.up.GetBytes(ctx, u)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: invalid json body", c.up.Provider())
	}
	return json.RawMessage(body), nil
}

// SearchMovies returns the results array of the first search page.
func (c *Client) SearchMovies(ctx context.Context, query string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&page=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	var res searchResponse
	if err := c.up.GetJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	if len(res.Results) == 0 || string(res.Results) == "null" {
		return json.RawMessage("[]"), nil
	}
	return res.Results, nil
}
