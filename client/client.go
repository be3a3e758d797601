// Package client talks to a running server on behalf of an administrator.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"reachout/models"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of err when it is an APIError, else 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsConnectionRefused reports whether err means nothing is listening at the server address.
func IsConnectionRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Valid   *bool           `json:"valid"`
}

func (e *envelope) decode(v interface{}) error {
	if len(e.Data) == 0 {
		return errors.New("response has no data")
	}
	return json.Unmarshal(e.Data, v)
}

type CertificateView struct {
	ID          uint   `json:"id"`
	StudentName string `json:"student_name"`
	CourseName  string `json:"course_name"`
	IssueDate   string `json:"issue_date"`
	CertNumber  string `json:"cert_number"`
	Status      string `json:"status"`
}

type Verification struct {
	Valid       bool
	Message     string
	Certificate CertificateView
}

type CourseView struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	Fees        decimal.Decimal `json:"fees"`
	ImageURL    *string         `json:"image_url"`
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

type Client struct {
	http *resty.Client
	now  func() time.Time
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
		now: time.Now,
	}
}

func (c *Client) do(ctx context.Context, method, path string, session *Session, body interface{}) (*envelope, error) {
	req := c.http.R().
		SetContext(ctx).
		SetResult(&envelope{}).
		SetError(&envelope{})
	if session != nil {
		req.SetAuthToken(session.Token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		message := resp.Status()
		if env, ok := resp.Error().(*envelope); ok && env.Message != "" {
			message = env.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: message}
	}

	env, ok := resp.Result().(*envelope)
	if !ok {
		return nil, fmt.Errorf("%s %s: unexpected response body", method, path)
	}
	return env, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, *models.AdminProfile, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, nil, err
	}

	var data struct {
		User  models.AdminProfile `json:"user"`
		Token string              `json:"token"`
	}
	if err := env.decode(&data); err != nil {
		return nil, nil, fmt.Errorf("decode login response: %w", err)
	}

	session, err := SessionFromToken(data.Token)
	if err != nil {
		return nil, nil, err
	}
	return session, &data.User, nil
}

func (c *Client) Me(ctx context.Context, session *Session) (*models.AdminProfile, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/me", session, nil)
	if err != nil {
		return nil, err
	}

	var profile models.AdminProfile
	if err := env.decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// Logout tells the server; the caller drops its session regardless of the result.
func (c *Client) Logout(ctx context.Context, session *Session) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", session, nil)
	return err
}

// CheckAuth re-validates a stored session and returns the session to keep.
// A 401, a 404 or a refused connection discards it. Any other failure keeps
// the session and is returned as the error.
func (c *Client) CheckAuth(ctx context.Context, session *Session) (*Session, *models.AdminProfile, error) {
	if !session.Valid(c.now()) {
		return nil, nil, nil
	}

	profile, err := c.Me(ctx, session)
	switch {
	case err == nil:
		return session, profile, nil
	case StatusCode(err) == http.StatusUnauthorized,
		StatusCode(err) == http.StatusNotFound,
		IsConnectionRefused(err):
		return nil, nil, err
	default:
		return session, nil, err
	}
}

func (c *Client) VerifyCertificate(ctx context.Context, number string) (*Verification, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/certificates/verify/"+url.PathEscape(number), nil, nil)
	if err != nil {
		return nil, err
	}

	v := &Verification{Message: env.Message}
	if env.Valid != nil {
		v.Valid = *env.Valid
	}
	if err := env.decode(&v.Certificate); err != nil {
		return nil, fmt.Errorf("decode certificate: %w", err)
	}
	return v, nil
}

func (c *Client) ListCourses(ctx context.Context) ([]CourseView, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/courses", nil, nil)
	if err != nil {
		return nil, err
	}

	courses := make([]CourseView, 0)
	if err := env.decode(&courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	status := &HealthStatus{}
	resp, err := c.http.R().SetContext(ctx).SetResult(status).Get("/health")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
	}
	return status, nil
}
