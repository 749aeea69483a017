// Package bridge talks to a Philips Hue bridge and keeps the local light snapshot current.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
	"github.com/cristianoliveira/alfred-hue/internal/version"
)

// DefaultTimeout bounds a single bridge request.
const DefaultTimeout = 3 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// LightFetcher fetches the current light snapshot.
type LightFetcher interface {
	Lights(ctx context.Context) (domain.Lights, error)
}

// Client is a Hue v1 REST API client.
type Client struct {
	host       string
	username   string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a Client for the bridge at host (host[:port] or a full URL).
func NewClient(host, username string, opts ...ClientOption) *Client {
	c := &Client{
		host:       strings.TrimSpace(host),
		username:   strings.TrimSpace(username),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) baseURL() string {
	if strings.HasPrefix(c.host, "http://") || strings.HasPrefix(c.host, "https://") {
		return strings.TrimSuffix(c.host, "/")
	}
	return "http://" + c.host
}

type wireState struct {
	On        bool       `json:"on"`
	Bri       int        `json:"bri"`
	Hue       int        `json:"hue"`
	Sat       int        `json:"sat"`
	XY        [2]float64 `json:"xy"`
	Effect    string     `json:"effect"`
	Reachable bool       `json:"reachable"`
}

type wireLight struct {
	Name  string    `json:"name"`
	State wireState `json:"state"`
}

type wireError struct {
	Error *struct {
		Type        int    `json:"type"`
		Address     string `json:"address"`
		Description string `json:"description"`
	} `json:"error"`
}

// hueUnauthorizedUser is the Hue API error type for an unknown username.
const hueUnauthorizedUser = 1

// Lights fetches all lights, ordered by id.
func (c *Client) Lights(ctx context.Context) (domain.Lights, error) {
	if c.host == "" || c.username == "" {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL() + "/api/" + url.PathEscape(c.username) + "/lights"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}
	return decodeLights(body)
}

// decodeLights parses the object-of-lights payload. The bridge reports failures
// as a JSON array of error objects with a 200 status.
func decodeLights(body []byte) (domain.Lights, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var errs []wireError
		if err := json.Unmarshal(body, &errs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
		for _, e := range errs {
			if e.Error == nil {
				continue
			}
			if e.Error.Type == hueUnauthorizedUser {
				return nil, ErrUnauthorized
			}
			return nil, fmt.Errorf("%w: %s", ErrBadResponse, e.Error.Description)
		}
		return nil, ErrBadResponse
	}

	var raw map[string]wireLight
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	lights := make(domain.Lights, 0, len(raw))
	for id, wl := range raw {
		lights = append(lights, domain.Light{
			ID:   id,
			Name: wl.Name,
			State: domain.LightState{
				On:        wl.State.On,
				Bri:       wl.State.Bri,
				Hue:       wl.State.Hue,
				Sat:       wl.State.Sat,
				XY:        wl.State.XY,
				Effect:    wl.State.Effect,
				Reachable: wl.State.Reachable,
			},
		})
	}
	domain.SortLights(lights)
	return lights, nil
}

// IsConfigError reports whether err means the user must fix the bridge settings.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrUnauthorized)
}
