// Package jikan reads anime and manga metadata from the Jikan v4 API.
// Payloads are passed through untouched.
package jikan

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"hobbiesapi/internal/platform/upstream"
)

type Kind string

const (
	KindAnime Kind = "anime"
	KindManga Kind = "manga"
)

type Client struct {
	up      *upstream.Client
	baseURL string
}

func NewClient(up *upstream.Client, baseURL string) *Client {
	return &Client{
		up:      up,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// envelope matches every Jikan v4 response body.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) Anime(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, KindAnime, id)
}

func (c *Client) Manga(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, KindManga, id)
}

func (c *Client) SearchAnime(ctx context.Context, query string) (json.RawMessage, error) {
	return c.search(ctx, KindAnime, query)
}

func (c *Client) SearchManga(ctx context.Context, query string) (json.RawMessage, error) {
	return c.search(ctx, KindManga, query)
}

func (c *Client) get(ctx context.Context, kind Kind, id string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, kind, url.PathEscape(id))

	var res envelope
	if err := c.up.GetJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return json.RawMessage("{}"), nil
	}
	return res.Data, nil
}

func (c *Client) search(ctx context.Context, kind Kind, query string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s?q=%s&page=1", c.baseURL, kind, url.QueryEscape(query))

	var res envelope
	if err := c.up.GetJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return json.RawMessage("[]"), nil
	}
	return res.Data, nil
}
