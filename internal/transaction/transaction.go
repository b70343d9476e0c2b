package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the canonical transaction direction
type Kind string

const (
	Credit Kind = "credit"
	Debit  Kind = "debit"
)

// Remote type values understood by the upstream API
const (
	RemoteReceivable = "receivable"
	RemotePayable    = "payable"
)

// Valid reports whether k is one of the canonical kinds
func (k Kind) Valid() bool {
	return k == Credit || k == Debit
}

// Transaction is the canonical record every aggregation operates on.
// JSON keys match the local dataset so canonical records round-trip with it.
type Transaction struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	OccurredAt  string  `json:"date"`
	AccountRef  string  `json:"accountId"`
}

// RemoteTransaction is the record shape served by the upstream transactions API
type RemoteTransaction struct {
	TransactionID string  `json:"transaction_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	CustomerID    string  `json:"customer_id"`
	CreatedAt     string  `json:"created_at"`
	Description   string  `json:"description,omitempty"`
}

// Decode parses a JSON document into generic values, keeping numbers as json.Number
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode transactions document: %w", err)
	}
	return doc, nil
}

// ParseCanonical parses a JSON array of canonical records
func ParseCanonical(data []byte) ([]Transaction, error) {
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("parse transactions: %w", err)
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

// ToRemote maps a canonical record back to the upstream shape.
// Credits become receivables, everything else payables.
func ToRemote(t Transaction) RemoteTransaction {
	remoteType := RemotePayable
	if t.Kind == Credit {
		remoteType = RemoteReceivable
	}

	return RemoteTransaction{
		TransactionID: t.ID,
		Type:          remoteType,
		Amount:        t.Amount,
		CustomerID:    t.AccountRef,
		CreatedAt:     t.OccurredAt,
		Description:   t.Description,
	}
}
