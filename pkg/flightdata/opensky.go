package flightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the OpenSky Network REST API base URL
	DefaultBaseURL = "https://opensky-network.org/api"

	// DefaultTimeout for API requests
	DefaultTimeout = 15 * time.Second

	// DefaultCacheDuration is how long a fetched snapshot is served
	// before the API is asked again. The anonymous tier allows only
	// 100 requests/day, so the cache is the first line of defense.
	DefaultCacheDuration = 10 * time.Second
)

// OpenSkyClient implements Source against the OpenSky Network API.
// API documentation: https://openskynetwork.github.io/opensky-api/
//
// The client combines a short-lived response cache with a rate limiter so
// a periodically refreshing server stays inside the anonymous quota.
type OpenSkyClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu            sync.Mutex
	cache         []Flight
	cacheTime     time.Time
	cacheDuration time.Duration
}

// OpenSkyConfig configures the OpenSky client.
type OpenSkyConfig struct {
	// BaseURL overrides the API endpoint (for testing)
	BaseURL string

	// Timeout for HTTP requests
	Timeout time.Duration

	// CacheDuration is the snapshot reuse window
	CacheDuration time.Duration

	// RequestsPerMinute caps upstream calls; 0 means 6/minute
	RequestsPerMinute float64
}

// NewOpenSkyClient creates a client with sane defaults for the anonymous
// API tier.
func NewOpenSkyClient(cfg OpenSkyConfig) *OpenSkyClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheDuration == 0 {
		cfg.CacheDuration = DefaultCacheDuration
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 6
	}

	return &OpenSkyClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:       rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60.0), 1),
		cacheDuration: cfg.CacheDuration,
	}
}

// Flights returns the current global state vectors, serving the cached
// snapshot when it is fresh enough.
func (c *OpenSkyClient) Flights(ctx context.Context) ([]Flight, error) {
	c.mu.Lock()
	if c.cache != nil && time.Since(c.cacheTime) < c.cacheDuration {
		cached := c.cache
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	flights, err := c.fetch(ctx, c.baseURL+"/states/all")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache = flights
	c.cacheTime = time.Now()
	c.mu.Unlock()

	return flights, nil
}

// FlightsInBounds fetches state vectors within a bounding box. Bounded
// queries bypass the global cache since each box is different.
func (c *OpenSkyClient) FlightsInBounds(ctx context.Context, lamin, lomin, lamax, lomax float64) ([]Flight, error) {
	url := fmt.Sprintf("%s/states/all?lamin=%.4f&lomin=%.4f&lamax=%.4f&lomax=%.4f",
		c.baseURL, lamin, lomin, lamax, lomax)
	return c.fetch(ctx, url)
}

// Close cleanly shuts down the client. OpenSky uses plain HTTP requests,
// so there is nothing to tear down.
func (c *OpenSkyClient) Close() error {
	return nil
}

func (c *OpenSkyClient) fetch(ctx context.Context, url string) ([]Flight, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch flight data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Message:    "OpenSky rate limit exceeded",
			Headers:    extractRateLimitHeaders(resp.Header),
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp openSkyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("parse API response: %w", err)
	}

	fetchTime := time.Unix(apiResp.Time, 0).UTC()
	if apiResp.Time == 0 {
		fetchTime = time.Now().UTC()
	}

	flights := make([]Flight, 0, len(apiResp.States))
	for _, state := range apiResp.States {
		f, ok := convertStateVector(state, fetchTime)
		if !ok {
			continue
		}
		flights = append(flights, f)
	}

	return flights, nil
}

// openSkyResponse is the raw /states/all payload. Each state vector is a
// heterogeneous JSON array, documented at
// https://openskynetwork.github.io/opensky-api/rest.html#all-state-vectors
type openSkyResponse struct {
	Time   int64             `json:"time"`
	States []json.RawMessage `json:"states"`
}

// Indexes into the OpenSky state vector array.
const (
	svICAO24        = 0
	svCallsign      = 1
	svOriginCountry = 2
	svLongitude     = 5
	svLatitude      = 6
	svBaroAltitude  = 7
	svOnGround      = 8
	svVelocity      = 9
	svTrueTrack     = 10
	svVerticalRate  = 11
	svGeoAltitude   = 13
	svSquawk        = 14
)

// convertStateVector decodes one OpenSky state vector. Aircraft on the
// ground or without a position are dropped; they have nothing to show on
// the globe. Returns ok=false for rows that cannot be used.
func convertStateVector(raw json.RawMessage, fetchTime time.Time) (Flight, bool) {
	var fields []interface{}
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) <= svTrueTrack {
		return Flight{}, false
	}

	onGround, _ := fields[svOnGround].(bool)
	lng := floatField(fields, svLongitude)
	lat := floatField(fields, svLatitude)
	if onGround || lng == nil || lat == nil {
		return Flight{}, false
	}

	f := Flight{
		Latitude:  *lat,
		Longitude: *lng,
		OnGround:  onGround,
		Track:     floatField(fields, svTrueTrack),
		LastSeen:  fetchTime,
	}

	if s, ok := fields[svICAO24].(string); ok {
		f.ICAO = s
	}
	if s, ok := fields[svCallsign].(string); ok {
		f.Callsign = strings.TrimSpace(s)
	}
	if s, ok := fields[svOriginCountry].(string); ok {
		f.OriginCountry = s
	}

	// Prefer barometric altitude, fall back to geometric
	if alt := floatField(fields, svBaroAltitude); alt != nil {
		f.AltitudeM = *alt
	} else if alt := floatField(fields, svGeoAltitude); alt != nil {
		f.AltitudeM = *alt
	}

	if v := floatField(fields, svVelocity); v != nil {
		f.VelocityMS = *v
	}
	if v := floatField(fields, svVerticalRate); v != nil {
		f.VerticalRate = *v
	}
	if len(fields) > svSquawk {
		if s, ok := fields[svSquawk].(string); ok {
			f.Squawk = s
		}
	}

	return f, true
}

// floatField extracts a nullable numeric field from a decoded state
// vector. Returns nil for null, missing, or non-numeric values.
func floatField(fields []interface{}, idx int) *float64 {
	if idx >= len(fields) {
		return nil
	}
	if v, ok := fields[idx].(float64); ok {
		return &v
	}
	return nil
}

// RateLimitError represents an HTTP 429 response with retry information.
type RateLimitError struct {
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Headers    RateLimitHeaders
}

// RateLimitHeaders carries rate limit information from response headers.
type RateLimitHeaders struct {
	Limit     int       // X-Rate-Limit-Limit: maximum requests allowed
	Remaining int       // X-Rate-Limit-Remaining: requests left in window
	Reset     time.Time // X-Rate-Limit-Reset: when the window resets
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
	}
	return e.Message
}

// IsRateLimitError checks whether an error is a rate limit error.
func IsRateLimitError(err error) (*RateLimitError, bool) {
	if rle, ok := err.(*RateLimitError); ok {
		return rle, true
	}
	return nil, false
}

// parseRetryAfter extracts the Retry-After header value. Supports both
// delay-seconds and HTTP-date formats; returns 0 when absent.
func parseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if retryTime, err := http.ParseTime(retryAfter); err == nil {
		if d := time.Until(retryTime); d > 0 {
			return d
		}
	}

	return 0
}

// extractRateLimitHeaders reads the X-Rate-Limit-* family (both hyphen
// spellings) from a response.
func extractRateLimitHeaders(headers http.Header) RateLimitHeaders {
	rlh := RateLimitHeaders{Limit: -1, Remaining: -1}

	readInt := func(keys ...string) (int, bool) {
		for _, k := range keys {
			if v := headers.Get(k); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					return n, true
				}
			}
		}
		return 0, false
	}

	if n, ok := readInt("X-Rate-Limit-Limit", "X-RateLimit-Limit"); ok {
		rlh.Limit = n
	}
	if n, ok := readInt("X-Rate-Limit-Remaining", "X-RateLimit-Remaining"); ok {
		rlh.Remaining = n
	}
	if n, ok := readInt("X-Rate-Limit-Reset", "X-RateLimit-Reset"); ok {
		rlh.Reset = time.Unix(int64(n), 0)
	}

	return rlh
}
