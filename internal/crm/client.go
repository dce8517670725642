package crm

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dbmrq/officedesk/internal/errors"
	"github.com/dbmrq/officedesk/internal/logging"
)

// TokenSource supplies the current bearer credential, if any.
// The session store implements it; the client only ever reads.
type TokenSource interface {
	Token() string
}

// Client is the REST client for the CRM API. One method per
// (resource, verb) pair; every call is an independent request with no
// retries, coalescing or de-duplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a client for the API rooted at baseURL.
// tokens may be nil for an unauthenticated client.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// apiError is the JSON body the server sends with failure statuses.
type apiError struct {
	Detail string `json:"detail"`
}

// do executes one request. A JSON body is sent when in is non-nil; a
// 2xx response is decoded into out when out is non-nil and the response
// has a body (a 204 or empty body resolves to success without decoding).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint := c.baseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return errors.RequestFailed(method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejection(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.ResponseDecodeFailed(path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.ResponseDecodeFailed(path, err)
	}
	return nil
}

// rejection translates a non-2xx response into a typed error carrying
// the server's message when one was sent.
func (c *Client) rejection(method, path string, resp *http.Response) error {
	var detail string
	if data, err := io.ReadAll(resp.Body); err == nil {
		var body apiError
		if json.Unmarshal(data, &body) == nil {
			detail = body.Detail
		}
	}
	logging.Warn("request rejected",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("detail", detail))
	return errors.RequestRejected(method, path, resp.StatusCode, detail)
}

// setCommonHeaders attaches the bearer credential (if any) and a
// request ID to the outgoing request.
func (c *Client) setCommonHeaders(req *http.Request) {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
}

// Login exchanges credentials for a session token. The endpoint takes
// form-encoded fields, unlike the rest of the API.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.RequestFailed(http.MethodPost, "/login", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail string
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			var body apiError
			if json.Unmarshal(data, &body) == nil {
				detail = body.Detail
			}
		}
		return nil, errors.AuthFailed(detail)
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.ResponseDecodeFailed("/login", err)
	}
	return &result, nil
}

// Register creates a new account and returns its implicit session.
func (c *Client) Register(ctx context.Context, profile RegisterProfile) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.do(ctx, http.MethodPost, "/register", profile, &result); err != nil {
		// Rejections surface as auth failures on the auth screen,
		// same as login; transport failures pass through.
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && !stderrors.Is(err, errors.ErrNetwork) {
			return nil, errors.AuthFailed(appErr.Message)
		}
		return nil, err
	}
	return &result, nil
}

// ListOffices fetches all offices.
func (c *Client) ListOffices(ctx context.Context) ([]Office, error) {
	var offices []Office
	if err := c.do(ctx, http.MethodGet, "/offices/", nil, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

// GetOffice fetches a single office.
func (c *Client) GetOffice(ctx context.Context, id int) (*Office, error) {
	var office Office
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offices/%d", id), nil, &office); err != nil {
		return nil, err
	}
	return &office, nil
}

// CreateOffice creates an office.
func (c *Client) CreateOffice(ctx context.Context, input OfficeInput) error {
	return c.do(ctx, http.MethodPost, "/offices/", input, nil)
}

// UpdateOffice updates an office.
func (c *Client) UpdateOffice(ctx context.Context, id int, input OfficeInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/offices/%d", id), input, nil)
}

// DeleteOffice deletes an office.
func (c *Client) DeleteOffice(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/offices/%d", id), nil, nil)
}

// ListBookings fetches all bookings visible to the caller.
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking creates a booking.
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) error {
	return c.do(ctx, http.MethodPost, "/bookings/", input, nil)
}

// DeleteBooking deletes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

// ListContracts fetches all contracts visible to the caller.
func (c *Client) ListContracts(ctx context.Context) ([]Contract, error) {
	var contracts []Contract
	if err := c.do(ctx, http.MethodGet, "/contracts/", nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// ListPayments fetches all payments visible to the caller.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.do(ctx, http.MethodGet, "/payments/", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment creates a payment.
func (c *Client) CreatePayment(ctx context.Context, input PaymentInput) error {
	return c.do(ctx, http.MethodPost, "/payments/", input, nil)
}

// CheckOverduePayments triggers the server-side overdue sweep and
// returns the server's result message. This is the only way the client
// ever causes a payment to become overdue.
func (c *Client) CheckOverduePayments(ctx context.Context) (string, error) {
	var result apiError
	if err := c.do(ctx, http.MethodPost, "/payments/check-overdue", nil, &result); err != nil {
		return "", err
	}
	return result.Detail, nil
}

// ListRequests fetches all maintenance requests visible to the caller.
func (c *Client) ListRequests(ctx context.Context) ([]Request, error) {
	var requests []Request
	if err := c.do(ctx, http.MethodGet, "/requests/", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateRequest creates a maintenance request.
func (c *Client) CreateRequest(ctx context.Context, input RequestInput) error {
	return c.do(ctx, http.MethodPost, "/requests/", input, nil)
}

// UpdateRequestStatus advances a request's workflow status.
func (c *Client) UpdateRequestStatus(ctx context.Context, id int, status RequestStatus) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/requests/%d", id), RequestStatusUpdate{Status: status}, nil)
}

// DeleteRequest deletes a maintenance request.
func (c *Client) DeleteRequest(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil)
}

// ListTenants fetches all tenants. Admin only; the server enforces it.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants/", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}
