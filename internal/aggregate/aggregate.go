package aggregate

import (
	"github.com/shopspring/decimal"

	"transactionapi/internal/transaction"
)

// Currency is the static label attached to every monetary result
const Currency = "USD"

// Filter selects transactions by kind
type Filter string

const (
	FilterAll    Filter = "all"
	FilterCredit Filter = Filter(transaction.Credit)
	FilterDebit  Filter = Filter(transaction.Debit)
)

// ParseFilter converts s to a Filter. Empty input selects everything.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterCredit, FilterDebit:
		return Filter(s), true
	}
	return "", false
}

// Breakdown splits a total into its credit and debit components
type Breakdown struct {
	CreditSum float64 `json:"creditSum"`
	DebitSum  float64 `json:"debitSum"`
	NetAmount float64 `json:"netAmount"`
}

// SumResult is the outcome of a sum query
type SumResult struct {
	TotalSum         float64    `json:"totalSum"`
	Currency         string     `json:"currency"`
	TransactionCount int        `json:"transactionCount"`
	Breakdown        *Breakdown `json:"breakdown,omitempty"`
}

// FilterByKind keeps transactions of the given kind. FilterAll returns the input as is.
func FilterByKind(txs []transaction.Transaction, f Filter) []transaction.Transaction {
	if f == FilterAll {
		return txs
	}

	filtered := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if Filter(tx.Kind) == f {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Sum adds all amounts exactly and rounds the total once to two decimals.
// Amounts are taken at their shortest decimal form, so 1.005 rounds to 1.01
// where a binary float total would round down to 1.00.
func Sum(txs []transaction.Transaction) float64 {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	return toFloat(total)
}

// ComputeBreakdown sums credits and debits separately. The net amount is the
// difference of the two rounded sums, rounded again.
func ComputeBreakdown(txs []transaction.Transaction) Breakdown {
	creditSum := Sum(FilterByKind(txs, FilterCredit))
	debitSum := Sum(FilterByKind(txs, FilterDebit))

	net := decimal.NewFromFloat(creditSum).Sub(decimal.NewFromFloat(debitSum))
	return Breakdown{
		CreditSum: creditSum,
		DebitSum:  debitSum,
		NetAmount: toFloat(net),
	}
}

// SumWithOptionalBreakdown sums the transactions selected by f. When
// includeBreakdown is set the breakdown covers the whole unfiltered set.
func SumWithOptionalBreakdown(txs []transaction.Transaction, f Filter, includeBreakdown bool) SumResult {
	filtered := FilterByKind(txs, f)

	result := SumResult{
		TotalSum:         Sum(filtered),
		Currency:         Currency,
		TransactionCount: len(filtered),
	}

	if includeBreakdown {
		breakdown := ComputeBreakdown(txs)
		result.Breakdown = &breakdown
	}

	return result
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := round2(d).Float64()
	return f
}
