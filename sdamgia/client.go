// Package sdamgia is a client for the sdamgia.ru problem database. The
// service has no api, everything is scraped out of its html pages.
package sdamgia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dinaprk/sdamgia-api/lib/recognition"
	"github.com/dinaprk/sdamgia-api/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const baseDomain = "sdamgia.ru"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

const defaultFormulaWorkers = 8

type Client struct {
	scope          Scope
	baseURL        *url.URL
	http           *resty.Client
	httpNoRedirect *resty.Client
	recognizer     recognition.Backend
	rasterizer     recognition.Rasterizer
	workers        int
}

type ClientOptions struct {
	// GiaType defaults to the EGE exam.
	GiaType GiaType
	// Subject defaults to math.
	Subject Subject
	// BaseURL overrides the scheme and host of every request, for
	// tests and mirrors. Empty selects the production domain derived
	// from the scope.
	BaseURL string
	// Recognizer turns rendered formula images into text. Leaving it
	// nil makes every call that requests recognized text fail.
	Recognizer recognition.Backend
	// Rasterizer renders fetched formula images for the recognizer.
	// Defaults to the svg rasterizer.
	Rasterizer recognition.Rasterizer
	// FormulaWorkers caps concurrent formula image fetches. Defaults
	// to 8.
	FormulaWorkers int
	// Timeout applies per request. Defaults to 30 seconds.
	Timeout time.Duration
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	scope := Scope{GiaType: opts.GiaType, Subject: opts.Subject}
	if scope.GiaType == "" {
		scope.GiaType = GiaEGE
	}
	if scope.Subject == "" {
		scope.Subject = SubjectMath
	}

	var baseURL *url.URL
	if opts.BaseURL != "" {
		parsed, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
		baseURL = parsed
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	workers := opts.FormulaWorkers
	if workers <= 0 {
		workers = defaultFormulaWorkers
	}
	rasterizer := opts.Rasterizer
	if rasterizer == nil {
		rasterizer = recognition.SVGRasterizer{}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		scope:      scope,
		baseURL:    baseURL,
		recognizer: opts.Recognizer,
		rasterizer: rasterizer,
		workers:    workers,
	}
	c.http = newRestyClient(jar, timeout, followRedirects(baseURL))
	c.httpNoRedirect = newRestyClient(jar, timeout, keepLastResponse())
	return c, nil
}

func newRestyClient(jar http.CookieJar, timeout time.Duration, policy resty.RedirectPolicy) *resty.Client {
	client := resty.New()
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(policy)
	client.SetTimeout(timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)
	return client
}

// followRedirects allows redirects within the problem database domain
// and to the configured override host.
func followRedirects(override *url.URL) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		host := req.URL.Hostname()
		if override != nil && host == override.Hostname() {
			return nil
		}
		if host == baseDomain || strings.HasSuffix(host, "."+baseDomain) {
			return nil
		}
		return fmt.Errorf("redirect to %q is not allowed", req.URL)
	})
}

// keepLastResponse surfaces the first redirect response instead of
// following it. The generation endpoints answer entirely through the
// location header.
func keepLastResponse() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	})
}

// Close releases the idle connections held by the underlying
// transports.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
	c.httpNoRedirect.GetClient().CloseIdleConnections()
}

// Scope returns the ambient exam type and subject the client was
// configured with.
func (c *Client) Scope() Scope {
	return c.scope
}

// CallOption overrides the ambient scope for a single call.
type CallOption func(*Scope)

func WithGiaType(t GiaType) CallOption {
	return func(s *Scope) { s.GiaType = t }
}

func WithSubject(subject Subject) CallOption {
	return func(s *Scope) { s.Subject = subject }
}

func (c *Client) callScope(opts []CallOption) Scope {
	scope := c.scope
	for _, opt := range opts {
		opt(&scope)
	}
	return scope
}

func (c *Client) scopeURL(scope Scope) string {
	if c.baseURL != nil {
		return c.baseURL.String()
	}
	return fmt.Sprintf("https://%s-%s.%s", scope.Subject, scope.GiaType, baseDomain)
}

func (c *Client) scopeBase(scope Scope) (*url.URL, error) {
	if c.baseURL != nil {
		return c.baseURL, nil
	}
	return url.Parse(c.scopeURL(scope))
}
