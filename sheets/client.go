package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 60 * time.Second
	defaultMaxAttempts    = 3
	defaultBaseBackoff    = 200 * time.Millisecond
	defaultMaxBackoff     = 2 * time.Second
	defaultUserAgent      = "sheetwatch/dev"
)

// Client is a Google Sheets v4 read-only API client
type Client struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient *http.Client

	requestTimeout time.Duration
	maxAttempts    int
	baseBackoff    time.Duration
	maxBackoff     time.Duration
	sleep          func(time.Duration)
	randInt63n     func(int64) int64
	now            func() time.Time
}

type rawResponse struct {
	StatusCode  int
	ContentType string
	RetryAfter  string
	Body        []byte
}

// New creates a new Sheets API client. The API key is sent as the `key`
// query parameter, which is sufficient for link-shared spreadsheets.
func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		APIKey:         apiKey,
		UserAgent:      defaultUserAgent,
		HTTPClient:     &http.Client{},
		requestTimeout: defaultRequestTimeout,
		maxAttempts:    defaultMaxAttempts,
		baseBackoff:    defaultBaseBackoff,
		maxBackoff:     defaultMaxBackoff,
		sleep:          time.Sleep,
		randInt63n:     rand.Int63n,
		now:            time.Now,
	}
}

// Values fetches the formatted cell values of an A1 range.
func (c *Client) Values(spreadsheetID, a1Range string) (*ValueRange, error) {
	path := fmt.Sprintf("/v4/spreadsheets/%s/values/%s",
		url.PathEscape(spreadsheetID), url.PathEscape(a1Range))

	raw, err := c.getJSON(path, url.Values{})
	if err != nil {
		return nil, err
	}

	var result ValueRange
	if err := json.Unmarshal(raw.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing values response: %w", err)
	}
	return &result, nil
}

// Grid fetches the formatting document for an A1 range, including per-cell
// effective format, user-entered format, and text format runs.
func (c *Client) Grid(spreadsheetID, a1Range string) (*Spreadsheet, error) {
	params := url.Values{}
	params.Set("ranges", a1Range)
	params.Set("includeGridData", "true")
	params.Set("fields", "spreadsheetId,sheets(properties(sheetId,title),data(startRow,startColumn,rowData(values(formattedValue,effectiveFormat(textFormat),userEnteredFormat(textFormat),textFormatRuns))))")

	raw, err := c.getJSON("/v4/spreadsheets/"+url.PathEscape(spreadsheetID), params)
	if err != nil {
		return nil, err
	}

	var result Spreadsheet
	if err := json.Unmarshal(raw.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing grid response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(path string, params url.Values) (*rawResponse, error) {
	raw, err := c.doWithRetry(func() (*http.Request, error) {
		u, err := url.Parse(c.BaseURL + path)
		if err != nil {
			return nil, fmt.Errorf("building URL: %w", err)
		}
		if c.APIKey != "" {
			params.Set("key", c.APIKey)
		}
		u.RawQuery = params.Encode()

		req, err := http.NewRequest("GET", u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		c.setCommonHeaders(req)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	if raw.StatusCode != 200 {
		return nil, parseAPIError(raw.StatusCode, raw.Body, raw.RetryAfter)
	}
	return raw, nil
}

func (c *Client) doWithRetry(makeRequest func() (*http.Request, error)) (*rawResponse, error) {
	maxAttempts := c.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := makeRequest()
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		timeout := c.requestTimeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		req = req.WithContext(ctx)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			cancel()
			if attempt < maxAttempts && isRetryableTransportError(err) {
				c.sleepWithBackoff(attempt, "")
				continue
			}
			return nil, fmt.Errorf("API request failed after %d attempt(s): %w", attempt, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if readErr != nil {
			if attempt < maxAttempts && isRetryableTransportError(readErr) {
				c.sleepWithBackoff(attempt, "")
				continue
			}
			return nil, fmt.Errorf("reading response after %d attempt(s): %w", attempt, readErr)
		}

		if attempt < maxAttempts && shouldRetryStatus(resp.StatusCode) {
			c.sleepWithBackoff(attempt, resp.Header.Get("Retry-After"))
			continue
		}

		return &rawResponse{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			RetryAfter:  resp.Header.Get("Retry-After"),
			Body:        body,
		}, nil
	}

	return nil, fmt.Errorf("API request failed after %d attempt(s)", maxAttempts)
}

func isRetryableTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func shouldRetryStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (c *Client) sleepWithBackoff(attempt int, retryAfterHeader string) {
	if d, ok := c.parseRetryAfter(retryAfterHeader); ok {
		c.sleep(d)
		return
	}

	base := c.baseBackoff
	if base <= 0 {
		base = defaultBaseBackoff
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay <= 0 {
			delay = defaultMaxBackoff
			break
		}
	}

	maxBackoff := c.maxBackoff
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	if delay <= 0 {
		return
	}

	// Full jitter in [0, delay).
	if c.randInt63n != nil {
		delay = time.Duration(c.randInt63n(int64(delay)))
	}
	c.sleep(delay)
}

func (c *Client) parseRetryAfter(headerValue string) (time.Duration, bool) {
	v := strings.TrimSpace(headerValue)
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		now := time.Now
		if c.now != nil {
			now = c.now
		}
		d := t.Sub(now())
		if d > 0 {
			return d, true
		}
	}
	return 0, false
}

// APIError is a typed error returned by API calls, with the HTTP status code.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	RetryAfter string
}

func (e *APIError) Error() string {
	if friendly := friendlyErrorMessage(e.StatusCode, e.Status, e.Message, e.RetryAfter); friendly != "" {
		return friendly
	}
	if e.Status != "" {
		return fmt.Sprintf("API error %d: %s — %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// friendlyErrorMessage translates known API failures into user-facing messages.
func friendlyErrorMessage(statusCode int, status, message, retryAfter string) string {
	if statusCode == http.StatusTooManyRequests {
		if retryAfter != "" {
			return fmt.Sprintf("rate limited by the Sheets API; retry after %s", retryAfter)
		}
		return "rate limited by the Sheets API; retry in a moment"
	}

	switch statusCode {
	case http.StatusForbidden:
		return "access denied — check the API key and that the sheet is link-shared"
	case http.StatusNotFound:
		if message != "" {
			return message // already human-readable, e.g. "Requested entity was not found."
		}
		return "spreadsheet not found"
	case http.StatusBadRequest:
		if status == "INVALID_ARGUMENT" && message != "" {
			return message // e.g. "Unable to parse range: Nope!A:Z"
		}
	}
	return ""
}

// IsNotFound returns true if the error is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

func parseAPIError(statusCode int, body []byte, retryAfter string) error {
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Status:     apiErr.Error.Status,
			Message:    apiErr.Error.Message,
			RetryAfter: retryAfter,
		}
	}
	return &APIError{StatusCode: statusCode, Message: string(body), RetryAfter: retryAfter}
}

func (c *Client) setCommonHeaders(req *http.Request) {
	userAgent := strings.TrimSpace(c.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
}
