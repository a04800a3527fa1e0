// Package remote implements the client for the remote tabular record
// store. The store exposes a single endpoint that dispatches on an
// "action" query parameter and carries record fields as URL parameters.
package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/worktrack-app/worktrack/internal/models"
)

// Filter restricts a List call to one user and calendar day.
type Filter struct {
	UserName string
	Date     string
}

// Store is the remote record store contract.
type Store interface {
	// List returns the records matching the filter.
	List(ctx context.Context, f Filter) ([]models.Record, error)
	// Create stores a new record and returns the server-assigned id
	// ("" if the store did not report one).
	Create(ctx context.Context, rec models.Record) (string, error)
	// Update overwrites the record identified by rec.RecordID.
	Update(ctx context.Context, rec models.Record) error
	// Delete removes the record with the given id.
	Delete(ctx context.Context, recordID string) error
}

// Client talks to the deployed record store endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the record store at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) List(
	ctx context.Context,
	f Filter,
) ([]models.Record, error) {
	params := url.Values{}

	if f.UserName != "" {
		params.Set("userName", f.UserName)
	}

	if f.Date != "" {
		params.Set("date", f.Date)
	}

	body, err := c.call(ctx, http.MethodGet, "read", params)
	if err != nil {
		return nil, err
	}

	return decodeRecords(body)
}

func (c *Client) Create(
	ctx context.Context,
	rec models.Record,
) (string, error) {
	// the store generates the record id; sending one (even empty) would
	// be stored verbatim
	params := recordParams(rec, false)

	body, err := c.call(ctx, http.MethodPost, "create", params)
	if err != nil {
		return "", err
	}

	var env envelope

	if err := json.Unmarshal(body, &env); err != nil {
		return "", &DecodeError{Excerpt: excerpt(body)}
	}

	return env.recordID(), nil
}

func (c *Client) Update(ctx context.Context, rec models.Record) error {
	params := recordParams(rec, true)

	_, err := c.call(ctx, http.MethodPost, "update", params)

	return err
}

func (c *Client) Delete(ctx context.Context, recordID string) error {
	params := url.Values{}
	params.Set("recordId", recordID)

	_, err := c.call(ctx, http.MethodPost, "delete", params)

	return err
}

// call performs one request against the endpoint and returns the raw
// body after transport- and application-level errors are weeded out.
func (c *Client) call(
	ctx context.Context,
	method, action string,
	params url.Values,
) ([]byte, error) {
	params.Set("action", action)

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}

	u := c.baseURL + sep + params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}

	if method == http.MethodPost {
		// text/plain sidesteps the endpoint's CORS preflight handling;
		// the payload travels in the URL
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var env envelope

	if json.Unmarshal(body, &env) == nil && env.Status == "error" {
		msg := env.Message
		if msg == "" {
			msg = "unknown API error"
		}

		return nil, &APIError{Message: msg}
	}

	return body, nil
}

// envelope is the store's response wrapper for mutating calls.
type envelope struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	RecordID any    `json:"recordId"`
}

// recordID normalizes the id, which the store reports as either a string
// or a number.
func (e envelope) recordID() string {
	switch v := e.RecordID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// recordParams flattens a record into URL parameters.
func recordParams(rec models.Record, includeID bool) url.Values {
	params := url.Values{}

	if includeID {
		params.Set("recordId", rec.RecordID)
	}

	params.Set("date", rec.Date)
	params.Set("userName", rec.UserName)
	params.Set("sessionNo", strconv.Itoa(rec.SessionNo))
	params.Set("startTime", rec.StartTime)
	params.Set("endTime", rec.EndTime)
	params.Set("duration", rec.Duration)
	params.Set("workDescription", rec.WorkDescription)
	params.Set("project", rec.Project)
	params.Set("category", rec.Category)
	params.Set("status", string(rec.Status))
	params.Set("approvedState", string(rec.ApprovedState))
	params.Set("approvedBy", rec.ApprovedBy)

	return params
}
