package sdamgia

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// get issues a GET and turns non-2xx statuses into a *StatusError.
// Network failures propagate as the transport's own error.
func (c *Client) get(ctx context.Context, rawURL string, query url.Values) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	res, err := req.Get(rawURL)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "sent GET request", "status", res.StatusCode(), "url", res.Request.URL)
	if res.IsError() {
		return nil, &StatusError{
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
			URL:        res.Request.URL,
		}
	}
	return res, nil
}

func (c *Client) fetch(ctx context.Context, scope Scope, path string, query url.Values) ([]byte, error) {
	res, err := c.get(ctx, c.scopeURL(scope)+path, query)
	if err != nil {
		return nil, err
	}
	return res.Body(), nil
}

func (c *Client) document(ctx context.Context, scope Scope, path string, query url.Values) (*goquery.Document, error) {
	body, err := c.fetch(ctx, scope, path, query)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(body))
}

// fetchRedirectLocation issues a GET with redirect following disabled
// and returns the raw location header of the response.
func (c *Client) fetchRedirectLocation(ctx context.Context, scope Scope, path string, query url.Values) (string, error) {
	req := c.httpNoRedirect.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	res, err := req.Get(c.scopeURL(scope) + path)
	if err != nil {
		return "", err
	}
	slog.DebugContext(ctx, "sent GET request", "status", res.StatusCode(), "url", res.Request.URL)

	location := res.Header().Get("Location")
	if location == "" {
		return "", ErrMissingRedirect
	}
	return location, nil
}
