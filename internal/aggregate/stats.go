package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"transactionapi/internal/transaction"
)

// Stats summarizes a set of transactions
type Stats struct {
	Total       float64                    `json:"total"`
	Count       int                        `json:"count"`
	CreditCount int                        `json:"creditCount"`
	DebitCount  int                        `json:"debitCount"`
	Average     float64                    `json:"average"`
	Breakdown   Breakdown                  `json:"breakdown"`
	ByType      map[transaction.Kind]Group `json:"byType"`
}

// Group is the count and running sum of one transaction kind
type Group struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// Layouts accepted for date range bounds and transaction dates
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ParseDate parses an RFC3339 timestamp or a plain YYYY-MM-DD date
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByAmountRange keeps transactions whose amount lies within the inclusive bounds.
// A nil bound is open.
func FilterByAmountRange(txs []transaction.Transaction, minAmount, maxAmount *float64) []transaction.Transaction {
	if minAmount == nil && maxAmount == nil {
		return txs
	}

	filtered := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if minAmount != nil && tx.Amount < *minAmount {
			continue
		}
		if maxAmount != nil && tx.Amount > *maxAmount {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// FilterByDateRange keeps transactions that occurred within the inclusive bounds.
// Records with an unparseable date are dropped whenever a bound is set.
func FilterByDateRange(txs []transaction.Transaction, from, to *time.Time) []transaction.Transaction {
	if from == nil && to == nil {
		return txs
	}

	filtered := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		occurred, ok := ParseDate(tx.OccurredAt)
		if !ok {
			continue
		}
		if from != nil && occurred.Before(*from) {
			continue
		}
		if to != nil && occurred.After(*to) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// GroupByKind counts transactions per kind and accumulates their amounts,
// rounding the running sum to two decimals after every item.
func GroupByKind(txs []transaction.Transaction) map[transaction.Kind]Group {
	groups := make(map[transaction.Kind]Group)
	for _, tx := range txs {
		g := groups[tx.Kind]
		g.Count++
		g.Sum = toFloat(decimal.NewFromFloat(g.Sum).Add(decimal.NewFromFloat(tx.Amount)))
		groups[tx.Kind] = g
	}
	return groups
}

// ComputeStats computes totals, counts, the average amount and per-kind groups
func ComputeStats(txs []transaction.Transaction) Stats {
	stats := Stats{
		Total:     Sum(txs),
		Count:     len(txs),
		Breakdown: ComputeBreakdown(txs),
		ByType:    GroupByKind(txs),
	}

	for _, tx := range txs {
		switch tx.Kind {
		case transaction.Credit:
			stats.CreditCount++
		case transaction.Debit:
			stats.DebitCount++
		}
	}

	if stats.Count > 0 {
		avg := decimal.NewFromFloat(stats.Total).Div(decimal.NewFromInt(int64(stats.Count)))
		stats.Average = toFloat(avg)
	}

	return stats
}
