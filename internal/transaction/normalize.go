package transaction

import (
	"encoding/json"
	"strconv"
)

// Wrapper keys under which upstream payloads carry their records
var listKeys = []string{"transactions", "transaction_data"}

// canonicalKeys marks a record that is already in canonical form
var canonicalKeys = []string{"id", "type", "amount", "accountId"}

// NormalizeList converts a decoded JSON payload into canonical transactions.
// A bare array or an object wrapping an array under a known key is mapped
// record by record. Anything else yields an empty list.
func NormalizeList(payload any) []Transaction {
	items, ok := ExtractList(payload)
	if !ok {
		return []Transaction{}
	}

	txs := make([]Transaction, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		txs = append(txs, Normalize(record))
	}
	return txs
}

// ExtractList returns the record array carried by payload, if any
func ExtractList(payload any) ([]any, bool) {
	switch doc := payload.(type) {
	case []any:
		return doc, true
	case map[string]any:
		for _, key := range listKeys {
			if items, ok := doc[key].([]any); ok {
				return items, true
			}
		}
	}
	return nil, false
}

// Normalize maps a single decoded record to canonical form.
// Records that already expose the canonical keys pass through unchanged.
func Normalize(record map[string]any) Transaction {
	if isCanonical(record) {
		return Transaction{
			ID:          stringField(record, "id"),
			Kind:        Kind(stringField(record, "type")),
			Amount:      amountField(record, "amount"),
			Description: stringField(record, "description"),
			OccurredAt:  stringField(record, "date"),
			AccountRef:  stringField(record, "accountId"),
		}
	}

	remoteType := stringField(record, "type")
	kind := Debit
	if remoteType == RemoteReceivable {
		kind = Credit
	}

	description := stringField(record, "description")
	if description == "" {
		description = remoteType + " transaction"
	}

	return Transaction{
		ID:          firstString(record, "id", "transaction_id"),
		Kind:        kind,
		Amount:      amountField(record, "amount"),
		Description: description,
		OccurredAt:  firstString(record, "created_at", "date"),
		AccountRef:  firstString(record, "customer_id", "accountId"),
	}
}

func isCanonical(record map[string]any) bool {
	for _, key := range canonicalKeys {
		if _, ok := record[key]; !ok {
			return false
		}
	}
	return true
}

func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := stringField(record, key); v != "" {
			return v
		}
	}
	return ""
}

// stringField reads key as a string. Numeric ids are rendered without exponent.
func stringField(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func amountField(record map[string]any, key string) float64 {
	switch v := record[key].(type) {
	case float64:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}
