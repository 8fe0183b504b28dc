package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

const defaultRequestTimeout = 10 * time.Second

// Client talks to the ads backend over HTTP. Every request carries the
// session's bearer token; every failure comes back as a domain.RemoteError
// so callers never conflate it with a validation failure.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Session        ports.SessionProvider
	RequestTimeout time.Duration
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, session ports.SessionProvider) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Session:    session,
	}
}

func (c *Client) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	var payload []listingPayload
	if err := c.getJSON(ctx, "ads", &payload); err != nil {
		return nil, err
	}
	return listingsFromPayload(payload), nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var payload []categoryPayload
	if err := c.getJSON(ctx, "category", &payload); err != nil {
		return nil, err
	}
	return categoriesFromPayload(payload), nil
}

func (c *Client) FetchComments(ctx context.Context, listingID domain.ListingID) ([]domain.Comment, error) {
	var payload []commentPayload
	if err := c.getJSON(ctx, fmt.Sprintf("ads/comments/%d", listingID), &payload); err != nil {
		return nil, err
	}
	return commentsFromPayload(payload), nil
}

func (c *Client) CreateListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error) {
	var payload listingPayload
	if err := c.postJSON(ctx, "ads/add", draftToPayload(draft), &payload, http.StatusCreated); err != nil {
		return domain.Listing{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) EditListing(ctx context.Context, id domain.ListingID, draft domain.ListingDraft) error {
	return c.postJSON(ctx, fmt.Sprintf("ads/edit/%d", id), draftToPayload(draft), nil, http.StatusOK)
}

func (c *Client) DeleteListing(ctx context.Context, id domain.ListingID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("ads/delete/%d", id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil, http.StatusNoContent)
}

func (c *Client) PostComment(ctx context.Context, listingID domain.ListingID, text string) error {
	body := commentRequest{Comment: text}
	return c.postJSON(ctx, fmt.Sprintf("ads/comments/%d", listingID), body, nil, http.StatusCreated)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, http.StatusOK)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any, want int) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &domain.RemoteError{Err: fmt.Errorf("encode request body: %w", err)}
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, want)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/"+path, body)
	if err != nil {
		return nil, &domain.RemoteError{Err: fmt.Errorf("create request: %w", err)}
	}

	token, err := c.Session.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("resolve bearer token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// do runs the request with the per-request timeout and checks the status
// against want. Anything other than want is a RemoteError.
func (c *Client) do(req *http.Request, out any, want int) error {
	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	resp, err := c.httpClient().Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &domain.RemoteError{Timeout: true, Err: err}
		}
		return &domain.RemoteError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		return &domain.RemoteError{Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return &domain.RemoteError{Err: fmt.Errorf("decode response body: %w", err)}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
