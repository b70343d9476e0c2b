package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"transactionapi/internal/aggregate"
	"transactionapi/internal/pagination"
	"transactionapi/internal/source"
	"transactionapi/internal/transaction"
)

// Source is the data access the service needs
type Source interface {
	Mode() source.Mode
	FetchCanonical(ctx context.Context) ([]transaction.Transaction, error)
	FetchLocal(ctx context.Context) ([]transaction.Transaction, error)
	FetchRemoteDocument(ctx context.Context, query url.Values) (any, error)
}

// ListResult is the full transaction list with any upstream cursor
type ListResult struct {
	Items  []transaction.Transaction `json:"items"`
	Cursor string                    `json:"cursor,omitempty"`
	Source source.Mode               `json:"source"`
}

// CountResult is page metadata plus the number of items on the page
type CountResult struct {
	pagination.Metadata
	Count  int    `json:"count"`
	Cursor string `json:"cursor,omitempty"`
}

// PageResult is one page of the local dataset
type PageResult struct {
	Data       []transaction.Transaction `json:"data"`
	Pagination pagination.Metadata       `json:"pagination"`
}

// StatsQuery narrows the transactions that statistics are computed over
type StatsQuery struct {
	Filter    aggregate.Filter
	MinAmount *float64
	MaxAmount *float64
	From      *time.Time
	To        *time.Time
}

type Service struct {
	source Source
	log    zerolog.Logger
}

func New(src Source, log zerolog.Logger) *Service {
	return &Service{source: src, log: log}
}

// ListTransactions returns every transaction from the configured source
func (s *Service) ListTransactions(ctx context.Context) (ListResult, error) {
	if s.source.Mode() != source.ModeRemote {
		txs, err := s.source.FetchCanonical(ctx)
		if err != nil {
			return ListResult{}, err
		}
		return ListResult{Items: txs, Source: source.ModeLocal}, nil
	}

	doc, err := s.source.FetchRemoteDocument(ctx, nil)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Items:  transaction.NormalizeList(doc),
		Cursor: nextCursor(doc),
		Source: source.ModeRemote,
	}, nil
}

// CountTransactions counts the transactions on one page. The local dataset is
// paginated here. The remote API paginates itself and its totals are trusted.
func (s *Service) CountTransactions(ctx context.Context, page, pageSize int) (CountResult, error) {
	if s.source.Mode() != source.ModeRemote {
		txs, err := s.source.FetchCanonical(ctx)
		if err != nil {
			return CountResult{}, err
		}

		return CountResult{
			Metadata: pagination.ComputeMetadata(page, pageSize, len(txs)),
			Count:    len(pagination.SliceForPage(txs, page, pageSize)),
		}, nil
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	doc, err := s.source.FetchRemoteDocument(ctx, query)
	if err != nil {
		return CountResult{}, err
	}

	return countRemote(doc, page, pageSize), nil
}

func countRemote(doc any, page, pageSize int) CountResult {
	switch payload := doc.(type) {
	case map[string]any:
		items, ok := transaction.ExtractList(payload)
		if !ok {
			break
		}

		total := reportedTotal(payload)
		if total <= 0 {
			total = len(items)
		}

		cursor := nextCursor(payload)
		meta := pagination.ComputeMetadata(page, pageSize, total)
		meta.HasNext = cursor != ""
		meta.HasPrevious = page > 1

		return CountResult{Metadata: meta, Count: len(items), Cursor: cursor}

	case []any:
		// A bare array is treated as a single page holding everything
		meta := pagination.ComputeMetadata(1, len(payload), len(payload))
		meta.HasNext = false
		meta.HasPrevious = false

		return CountResult{Metadata: meta, Count: len(payload)}
	}

	meta := pagination.ComputeMetadata(page, pageSize, 0)
	meta.HasNext = false
	meta.HasPrevious = false
	return CountResult{Metadata: meta}
}

// SumTransactions sums the transactions selected by filter
func (s *Service) SumTransactions(ctx context.Context, filter aggregate.Filter, includeBreakdown bool) (aggregate.SumResult, error) {
	txs, err := s.source.FetchCanonical(ctx)
	if err != nil {
		return aggregate.SumResult{}, err
	}

	return aggregate.SumWithOptionalBreakdown(txs, filter, includeBreakdown), nil
}

// LocalPage returns one page of the local dataset regardless of the configured source
func (s *Service) LocalPage(ctx context.Context, page, pageSize int) (PageResult, error) {
	txs, err := s.source.FetchLocal(ctx)
	if err != nil {
		return PageResult{}, err
	}

	meta := pagination.ComputeMetadata(page, pageSize, len(txs))
	if pageSize <= 0 {
		meta.HasNext = false
		meta.HasPrevious = false
	}

	return PageResult{
		Data:       pagination.SliceForPage(txs, page, pageSize),
		Pagination: meta,
	}, nil
}

// Stats computes summary statistics over the transactions matching query
func (s *Service) Stats(ctx context.Context, query StatsQuery) (aggregate.Stats, error) {
	txs, err := s.source.FetchCanonical(ctx)
	if err != nil {
		return aggregate.Stats{}, err
	}

	filter := query.Filter
	if filter == "" {
		filter = aggregate.FilterAll
	}

	txs = aggregate.FilterByKind(txs, filter)
	txs = aggregate.FilterByAmountRange(txs, query.MinAmount, query.MaxAmount)
	txs = aggregate.FilterByDateRange(txs, query.From, query.To)

	s.log.Debug().Int("matched", len(txs)).Str("type", string(filter)).Msg("Computing transaction stats")
	return aggregate.ComputeStats(txs), nil
}

func nextCursor(doc any) string {
	payload, ok := doc.(map[string]any)
	if !ok {
		return ""
	}

	switch v := payload["next_cursor"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func reportedTotal(payload map[string]any) int {
	meta, ok := payload["metadata"].(map[string]any)
	if !ok {
		return 0
	}

	switch v := meta["total"].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(v)
	}
	return 0
}
