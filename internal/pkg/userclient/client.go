package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

// Client is the course service's synchronous HTTP client for the user
// service. Every lookup is a single call with a bounded timeout; transport
// failures surface as apperrors.ErrUpstreamUnavailable, which the error
// middleware maps to 502. A remote 404 is apperrors.ErrUserNotFound, a
// different condition with a different HTTP-facing outcome.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a user service client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope mirrors the user service's response wrapper
type envelope struct {
	Data  *models.User     `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

// GetUserByID fetches the current record for a user id. It returns
// apperrors.ErrUserNotFound when the user service answers 404 and an error
// wrapping apperrors.ErrUpstreamUnavailable on any communication failure.
func (c *Client) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	url := c.baseURL + "/api/v1/users/" + strconv.FormatInt(id, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body envelope
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: decoding user response: %v", apperrors.ErrUpstreamUnavailable, err)
		}
		if body.Data == nil {
			return nil, fmt.Errorf("%w: empty user response", apperrors.ErrUpstreamUnavailable)
		}
		return body.Data, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrUserNotFound

	default:
		return nil, fmt.Errorf("%w: unexpected status %s", apperrors.ErrUpstreamUnavailable, resp.Status)
	}
}

// CreateUser forwards a user creation payload to the user service and returns
// the stored record. Remote validation failures and email conflicts are
// relayed as their local error kinds so the boundary maps them to the same
// statuses the user service would have answered with.
func (c *Client) CreateUser(ctx context.Context, payload dto.CreateUserRequest) (*models.User, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encoding user payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/users", &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var body envelope
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: decoding user response: %v", apperrors.ErrUpstreamUnavailable, err)
		}
		if body.Data == nil {
			return nil, fmt.Errorf("%w: empty user response", apperrors.ErrUpstreamUnavailable)
		}
		return body.Data, nil

	case http.StatusBadRequest:
		return nil, apperrors.ErrValidationFailed

	case http.StatusConflict:
		return nil, apperrors.ErrEmailAlreadyExists

	default:
		return nil, fmt.Errorf("%w: unexpected status %s", apperrors.ErrUpstreamUnavailable, resp.Status)
	}
}
