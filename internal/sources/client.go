package sources

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	defaultUserAgent = "cliffordnwanna/job-hunter (remote job aggregator)"
	contentEncoding  = "gzip, deflate"

	// DefaultTimeout bounds a single source fetch. A slow board must not
	// stall the whole aggregation.
	DefaultTimeout = 15 * time.Second
)

// Client is the HTTP client shared by all sources.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	logger     *zap.Logger
}

func NewClient(logger *zap.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: defaultUserAgent,
		logger:    logger,
	}
}

// getJSON performs a GET request and decodes the JSON body into target.
func (c *Client) getJSON(ctx context.Context, rawURL string, q url.Values, target any) error {
	body, err := c.get(ctx, rawURL, q, "application/json")
	if err != nil {
		return err
	}
	defer body.Close()

	if err := decodeJSON(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// getHTML performs a GET request and parses the body as an HTML document.
func (c *Client) getHTML(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := c.get(ctx, rawURL, nil, "text/html")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html from %s: %w", rawURL, err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, rawURL string, q url.Values, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Encoding", contentEncoding)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		return &gzipBody{Reader: gz, underlying: resp.Body}, nil
	}

	return resp.Body, nil
}

func decodeJSON(r io.Reader, target any) error {
	return json.NewDecoder(r).Decode(target)
}

type gzipBody struct {
	*gzip.Reader
	underlying io.ReadCloser
}

func (g *gzipBody) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.underlying.Close()
		return err
	}
	return g.underlying.Close()
}

// decodeRecords maps loosely-typed source records onto a typed struct slice.
// Boards disagree on field types (salaries arrive as numbers or strings, and
// dates as timestamps or ISO text), so decoding is weakly typed.
func decodeRecords(raw, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
