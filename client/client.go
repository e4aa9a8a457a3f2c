// Package client talks to the diet survival REST API. Every response is
// wrapped in an {success, data, message} envelope; the client returns data
// and turns everything else into an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dietSurvivalWeb/internal/types/api"
	"dietSurvivalWeb/internal/types/badge"
	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/challenge"
	"dietSurvivalWeb/internal/types/coach"
	"dietSurvivalWeb/internal/types/meal"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// APIError is returned for non-2xx responses and for envelopes with
// success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// ErrEmptyData is returned when a successful envelope carries no data.
var ErrEmptyData = errors.New("api response has no data")

// IsAPIError reports whether err carries an upstream status.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Observer is told the outcome of every call, keyed by endpoint name.
type Observer func(endpoint, outcome string)

type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

type Option func(*Client)

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenKey struct{}

// ContextWithToken attaches the caller's bearer token to ctx.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func (c *Client) GetMonthlyLogs(ctx context.Context, year, month int) (*calendar.MonthlyCalendar, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	return required(get[*calendar.MonthlyCalendar](ctx, c, "monthly_logs", "/api/logs/monthly?"+q.Encode()))
}

func (c *Client) GetDailyReport(ctx context.Context, date string) (*meal.DailyNutrition, error) {
	q := url.Values{}
	q.Set("date", date)
	return required(get[*meal.DailyNutrition](ctx, c, "daily_report", "/api/logs/daily?"+q.Encode()))
}

// AnalyzeImage uploads an image as the multipart field "image".
func (c *Client) AnalyzeImage(ctx context.Context, filename string, image io.Reader) (*meal.Analysis, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return required(call[*meal.Analysis](ctx, c, "analyze_image", http.MethodPost, "/api/logs/analyze-image", &buf, mw.FormDataContentType()))
}

func (c *Client) CreateMealLog(ctx context.Context, req meal.CreateMealLogRequest) (*meal.MealLog, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meal log: %w", err)
	}
	return required(call[*meal.MealLog](ctx, c, "create_meal_log", http.MethodPost, "/api/logs", bytes.NewReader(body), "application/json"))
}

func (c *Client) GetRecommendedChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	return get[[]challenge.Challenge](ctx, c, "recommended_challenges", "/api/challenges/recommended")
}

func (c *Client) GetMyChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	return get[[]challenge.Challenge](ctx, c, "my_challenges", "/api/challenges/my-list")
}

func (c *Client) GetChallengeDetails(ctx context.Context, id string) (*challenge.Challenge, error) {
	return required(get[*challenge.Challenge](ctx, c, "challenge_details", "/api/challenges/"+url.PathEscape(id)))
}

func (c *Client) GetCoachingTip(ctx context.Context) (*coach.Tip, error) {
	return required(get[*coach.Tip](ctx, c, "coaching_tip", "/api/ai/coaching-tip"))
}

func (c *Client) GetUserBadges(ctx context.Context, username string) ([]badge.Badge, error) {
	return get[[]badge.Badge](ctx, c, "user_badges", "/api/users/"+url.PathEscape(username)+"/badges")
}

func required[T any](v *T, err error) (*T, error) {
	if err == nil && v == nil {
		return nil, ErrEmptyData
	}
	return v, err
}

func get[T any](ctx context.Context, c *Client, endpoint, path string) (T, error) {
	return call[T](ctx, c, endpoint, http.MethodGet, path, nil, "application/json")
}

func call[T any](ctx context.Context, c *Client, endpoint, method, path string, body io.Reader, contentType string) (T, error) {
	data, err := roundTrip[T](ctx, c, method, path, body, contentType)
	if c.observer != nil {
		outcome := OutcomeOK
		if err != nil {
			outcome = OutcomeError
		}
		c.observer(endpoint, outcome)
	}
	if err != nil {
		return data, fmt.Errorf("%s: %w", endpoint, err)
	}
	return data, nil
}

func roundTrip[T any](ctx context.Context, c *Client, method, path string, body io.Reader, contentType string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}

	var env api.Response[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(raw))
			if len(msg) > 200 {
				msg = msg[:200]
			}
		}
		return zero, &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		return zero, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return env.Data, nil
}
