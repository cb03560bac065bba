package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/logging"
)

// TokenSource yields the current session; the state store satisfies it.
// Reading through it on every call means a login or logout between two
// requests is picked up immediately.
type TokenSource interface {
	Session() models.Session
}

type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. The underlying
// http.Client is left with transport defaults on purpose: no client-side
// timeout is enforced.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, true, &out)
	return out, err
}

func (c *HTTPClient) SearchAvailability(ctx context.Context, q models.AvailabilityQuery) ([]models.Vehicle, error) {
	params := url.Values{}
	params.Set("branchId", q.BranchID)
	params.Set("startTime", q.StartTime)
	params.Set("endTime", q.EndTime)
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	var out []models.Vehicle
	err := c.do(ctx, http.MethodGet, "/api/v1/availability", params, nil, false, &out)
	return out, err
}

func (c *HTTPClient) CreateBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	var out models.Booking
	err := c.do(ctx, http.MethodPost, "/api/v1/bookings", nil, req, false, &out)
	return out, err
}

func (c *HTTPClient) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, http.MethodGet, "/api/v1/bookings/me", nil, nil, false, &out)
	return out, err
}

func (c *HTTPClient) TopRented(ctx context.Context, limit int) ([]models.TopRentedCar, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var out []models.TopRentedCar
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/reports/top-rented", params, nil, false, &out)
	return out, err
}

func (c *HTTPClient) Utilization(ctx context.Context, branchID, from, to string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("branchId", branchID)
	params.Set("from", from)
	params.Set("to", to)

	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/reports/utilization", params, nil, false, &out)
	return out, err
}

// errorBody is the server's ApiErrorResponse; only the fields the client
// reads are decoded.
type errorBody struct {
	Status  int      `json:"status"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// do runs one request/response exchange. skipAuth suppresses the bearer
// header (login only). A non-2xx status yields an *Error; on success the
// JSON body is decoded into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any, skipAuth bool, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Session().Token; token != "" && !skipAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		if isJSON {
			var eb errorBody
			if err := json.Unmarshal(data, &eb); err == nil {
				apiErr.Code = eb.Code
				apiErr.Message = eb.Message
				apiErr.Details = eb.Details
			}
		}
		c.log.Debug(ctx, "request failed", "method", method, "path", path,
			"status", resp.StatusCode, "code", apiErr.Code)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
