package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/haruko-imports/site/catalog"
	"github.com/haruko-imports/site/config"
)

// ErrStatus is returned when the content server answers with a non-200 status.
var ErrStatus = errors.New("unexpected status")

// Client fetches fixtures from a remote content server's /api/data endpoint.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

// New creates a client for the content server at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid content API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid content API URL %q: scheme must be http or https", baseURL)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http: &fasthttp.Client{
			Name:                "haruko-site",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
	}, nil
}

// WithDial replaces the dialer, e.g. with an in-memory listener.
func (c *Client) WithDial(dial fasthttp.DialFunc) *Client {
	c.http.Dial = dial
	return c
}

type errorBody struct {
	Error string `json:"error"`
}

// Fetch GETs /api/data/<name> and decodes the body into v.
func (c *Client) Fetch(ctx context.Context, name string, v any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/api/data/" + url.PathEscape(name))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d < timeout {
			timeout = d
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		var body errorBody
		_ = json.Unmarshal(resp.Body(), &body)
		if body.Error == "" {
			body.Error = fasthttp.StatusMessage(status)
		}
		return fmt.Errorf("failed to fetch %s: %w %d: %s", name, ErrStatus, status, body.Error)
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (c *Client) Trucks(ctx context.Context) ([]catalog.Truck, error) {
	var trucks []catalog.Truck
	err := c.Fetch(ctx, config.TruckImagesFile, &trucks)
	return trucks, err
}

func (c *Client) Descriptions(ctx context.Context) ([]catalog.TruckDescription, error) {
	var descs []catalog.TruckDescription
	err := c.Fetch(ctx, config.TruckDescriptionsFile, &descs)
	return descs, err
}

func (c *Client) Links(ctx context.Context) (catalog.Links, error) {
	var links catalog.Links
	err := c.Fetch(ctx, config.LinksFile, &links)
	return links, err
}
