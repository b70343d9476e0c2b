package source

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"transactionapi/internal/apperror"
	"transactionapi/internal/transaction"
)

// Mode names where transactions are read from
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// ModeForEnvironment maps a deployment environment to a data source.
// Development, or no environment at all, reads the local dataset.
func ModeForEnvironment(env string) Mode {
	if env == "" || env == "development" {
		return ModeLocal
	}
	return ModeRemote
}

// Options configures a Selector
type Options struct {
	Mode      Mode
	LocalPath string
	RemoteURL string
	Fetcher   Fetcher
	Logger    zerolog.Logger
}

// Selector reads transactions from the configured source. Nothing is cached
// between calls.
type Selector struct {
	opts Options
}

func NewSelector(opts Options) *Selector {
	return &Selector{opts: opts}
}

// Mode returns the source the selector reads from
func (s *Selector) Mode() Mode {
	return s.opts.Mode
}

// FetchCanonical returns every transaction from the configured source in canonical form
func (s *Selector) FetchCanonical(ctx context.Context) ([]transaction.Transaction, error) {
	if s.opts.Mode == ModeRemote {
		doc, err := s.FetchRemoteDocument(ctx, nil)
		if err != nil {
			return nil, err
		}
		return transaction.NormalizeList(doc), nil
	}
	return s.FetchLocal(ctx)
}

// FetchLocal reads and parses the local dataset regardless of mode
func (s *Selector) FetchLocal(ctx context.Context) ([]transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.NewDataSourceError("Request cancelled", 0, err)
	}

	data, err := os.ReadFile(s.opts.LocalPath)
	if err != nil {
		s.opts.Logger.Error().Err(err).Str("path", s.opts.LocalPath).Msg("Error reading local transactions")
		return nil, apperror.NewDataSourceError("Failed to read local transactions", 0, err)
	}

	txs, err := transaction.ParseCanonical(data)
	if err != nil {
		s.opts.Logger.Error().Err(err).Str("path", s.opts.LocalPath).Msg("Error parsing local transactions")
		return nil, apperror.NewDataSourceError("Failed to parse local transactions", 0, err)
	}

	for _, tx := range txs {
		if !tx.Kind.Valid() {
			s.opts.Logger.Warn().Str("id", tx.ID).Str("type", string(tx.Kind)).Msg("Local transaction has an unknown type")
		}
	}

	s.opts.Logger.Debug().Int("count", len(txs)).Msg("Loaded local transactions")
	return txs, nil
}

// FetchRemoteDocument fetches the upstream payload and returns it decoded but
// otherwise untouched, so callers can inspect page-shaped responses.
func (s *Selector) FetchRemoteDocument(ctx context.Context, query url.Values) (any, error) {
	if s.opts.Fetcher == nil {
		return nil, apperror.NewDataSourceError(apperror.MsgRequestConfigError, 0, nil)
	}

	target := s.opts.RemoteURL
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}

	body, err := s.opts.Fetcher.Fetch(ctx, target)
	if err != nil {
		if IsTimeout(err) {
			s.opts.Logger.Warn().Str("url", target).Msg("Upstream request timed out")
		}
		if apperror.IsDataSource(err) {
			return nil, err
		}
		return nil, apperror.NewDataSourceError(apperror.MsgNetworkError, 0, err)
	}

	doc, err := transaction.Decode(body)
	if err != nil {
		s.opts.Logger.Error().Err(err).Str("url", target).Msg("Error decoding upstream response")
		return nil, apperror.NewDataSourceError("Invalid response from external service", http.StatusBadGateway, err)
	}

	return doc, nil
}
