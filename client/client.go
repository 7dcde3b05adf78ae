// Package client fetches raw pages and index files from the DIBBS
// portal. It owns no parsing: callers hand the fetched text to
// client/index and client/detail.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	dibbsBaseURL = "https://www.dibbs.bsm.dla.mil"

	// Be polite to the portal: it throttles aggressive clients.
	limitRate = 5

	// The portal gates every page behind a DoD warning splash and
	// checks for this cookie instead of re-rendering the dialog. With
	// the cookie preset there is nothing to click through.
	consentCookie = "DIBBSDoDWarning=AGREE"
)

// Doer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Limiter interface{ Wait(context.Context) error }

func New(opts ...ClientOption) *Client {
	c := &Client{consent: consentCookie}
	return c.applyOptions(opts...)
}

type ClientOption func(c *Client)

func WithHttpClient(client HttpRequestDoer) ClientOption {
	return func(c *Client) { c.client = client }
}

func WithRateLimiter(l Limiter) ClientOption {
	return func(c *Client) { c.limiter = l }
}

type Client struct {
	client  HttpRequestDoer
	limiter Limiter
	ua      string
	consent string

	baseUrl string
}

func (self *Client) applyOptions(opts ...ClientOption) *Client {
	for _, fn := range opts {
		fn(self)
	}

	if self.client == nil {
		self.client = &http.Client{}
	}

	if self.limiter == nil {
		self.limiter = rate.NewLimiter(limitRate, limitRate)
	}

	return self
}

func (self *Client) WithBaseURL(url string) *Client {
	self.baseUrl = url
	return self
}

func (self *Client) BaseURL() string {
	if self.baseUrl == "" {
		return dibbsBaseURL
	}
	return self.baseUrl
}

func (self *Client) WithUserAgent(ua string) *Client {
	self.ua = ua
	return self
}

func (self *Client) WithConsentCookie(cookie string) *Client {
	self.consent = cookie
	return self
}

func (self *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create new GET request for %q: %w", url, err)
	}
	req.Header.Add("User-Agent", self.ua)
	if self.consent != "" {
		req.Header.Add("Cookie", self.consent)
	}

	if err := self.limitRate(ctx); err != nil {
		return nil, fmt.Errorf("rate limit GET %s: %w", url, err)
	}

	resp, err := self.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	return resp, nil
}

func (self *Client) limitRate(ctx context.Context) error {
	if self.limiter != nil {
		if err := self.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait: %w", err)
		}
	}
	return nil
}

// GetText fetches url and returns the response body as text. The body
// is read before the status check, so keep-alive connections stay
// reusable.
func (self *Client) GetText(ctx context.Context, url string) (string, error) {
	resp, err := self.Get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode > maxExpectedStatusCode {
		return "", fmt.Errorf("GET %s: %w", url, newUnexpectedStatusError(resp))
	}
	if err != nil {
		return "", fmt.Errorf("read body from GET %s: %w", url, err)
	}

	return string(body), nil
}

func (self *Client) joinPath(elem ...string) (string, error) {
	u, err := url.JoinPath(self.BaseURL(), elem...)
	if err != nil {
		return "", fmt.Errorf("join path %v: %w", elem, err)
	}
	return u, nil
}

// IndexFile fetches the RFQ index file published for day.
func (self *Client) IndexFile(ctx context.Context, day time.Time,
) (string, error) {
	url, err := self.joinPath(indexArchivePath, IndexFileName(day))
	if err != nil {
		return "", err
	}
	text, err := self.GetText(ctx, url)
	if err != nil {
		return "", fmt.Errorf("index file for %s: %w",
			day.Format(time.DateOnly), err)
	}
	return text, nil
}

// SolicitationPage fetches the detail page listing open solicitations
// for one NSN.
func (self *Client) SolicitationPage(ctx context.Context, nsn string,
) (string, error) {
	u, err := self.joinPath(rfqNsnPath)
	if err != nil {
		return "", err
	}
	u += "?value=" + url.QueryEscape(nsn) + "&category=nsn"

	page, err := self.GetText(ctx, u)
	if err != nil {
		return "", fmt.Errorf("solicitation page for NSN %v: %w", nsn, err)
	}
	return page, nil
}
