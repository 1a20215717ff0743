package goodreads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"hobbiesapi/internal/platform/upstream"
)

const rootTag = "GoodreadsResponse"

// ErrMalformedResponse is returned when the payload is not a GoodReads XML
// document.
var ErrMalformedResponse = errors.New("goodreads: malformed response")

// Client reads books from the GoodReads XML API.
type Client struct {
	up      *upstream.Client
	baseURL string
	apiKey  string
}

// NewClient returns a Client that sends apiKey with every request to baseURL.
func NewClient(up *upstream.Client, baseURL, apiKey string) *Client {
	return &Client{
		up:      up,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Book fetches /book/show/{id}.xml and normalizes its book element. A
// response without a book element yields an all-empty summary.
func (c *Client) Book(ctx context.Context, id string) (BookSummary, error) {
	u := fmt.Sprintf("%s/book/show/%s.xml?key=%s",
		c.baseURL, url.PathEscape(id), url.QueryEscape(c.apiKey))

	root, err := c.fetch(ctx, u)
	if err != nil {
		return BookSummary{}, err
	}
	return NormalizeBookDetail(root.Child("book")), nil
}

// Search runs /search/index.xml and normalizes every work entry.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResultSummary, error) {
	u := fmt.Sprintf("%s/search/index.xml?key=%s&q=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	root, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	works := root.Descend("search", "results")["work"]
	return NormalizeSearchResults(works), nil
}

func (c *Client) fetch(ctx context.Context, u string) (Node, error) {
	body, err := c.up.GetBytes(ctx, u)
	if err != nil {
		return nil, err
	}
	doc, err := ParseXML(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, ok := doc[rootTag]; !ok {
		return nil, fmt.Errorf("%w: missing %s root", ErrMalformedResponse, rootTag)
	}
	return doc.Child(rootTag), nil
}
