package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"transactionapi/internal/apperror"
	"transactionapi/internal/logger"
)

const DefaultTimeout = 10 * time.Second

// Fetcher retrieves a raw JSON document from a URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcherConfig configures the upstream HTTP client
type HTTPFetcherConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// HTTPFetcher fetches documents from the upstream transactions API
type HTTPFetcher struct {
	client *resty.Client
}

// upstreamError is the error body returned by the upstream API
type upstreamError struct {
	Message string `json:"message"`
}

// NewHTTPFetcher creates a fetcher with JSON headers, an optional bearer
// token and request/response logging.
func NewHTTPFetcher(cfg HTTPFetcherConfig) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: cfg.Logger})

	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		logger.FromContextOr(r.Context(), cfg.Logger).Debug().
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("Upstream request")
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		logger.FromContextOr(r.Request.Context(), cfg.Logger).Debug().
			Int("status", r.StatusCode()).
			Str("url", r.Request.URL).
			Dur("duration", r.Time()).
			Msg("Upstream response")
		return nil
	})

	return &HTTPFetcher{client: client}
}

// Fetch issues a GET request and returns the response body. Upstream error
// statuses are passed through, missing responses map to a network error.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, apperror.NewDataSourceError(apperror.MsgRequestConfigError, 0, err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetError(&upstreamError{}).
		Get(rawURL)
	if err != nil {
		return nil, apperror.NewDataSourceError(apperror.MsgNetworkError, 0, err)
	}

	if resp.IsError() {
		message := apperror.MsgExternalAPIError
		if body, ok := resp.Error().(*upstreamError); ok && body.Message != "" {
			message = body.Message
		}
		return nil, apperror.NewDataSourceError(message, resp.StatusCode(), fmt.Errorf("upstream responded %s", resp.Status()))
	}

	return resp.Body(), nil
}

// restyLogger routes resty's internal messages through zerolog
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// IsTimeout reports whether err was caused by the upstream call running out of time
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
