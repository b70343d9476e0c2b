package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	doc, err := Decode([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestNormalizeList(t *testing.T) {
	t.Run("bare array of remote records", func(t *testing.T) {
		doc := decode(t, `[
			{"transaction_id": "tx-1", "type": "receivable", "amount": 120.5, "customer_id": "cust-9", "created_at": "2024-02-01T10:00:00Z", "description": "Invoice 42"},
			{"transaction_id": "tx-2", "type": "repayment", "amount": 40, "customer_id": "cust-9", "created_at": "2024-02-02T10:00:00Z"}
		]`)

		txs := NormalizeList(doc)

		require.Len(t, txs, 2)
		assert.Equal(t, Transaction{
			ID:          "tx-1",
			Kind:        Credit,
			Amount:      120.5,
			Description: "Invoice 42",
			OccurredAt:  "2024-02-01T10:00:00Z",
			AccountRef:  "cust-9",
		}, txs[0])
		assert.Equal(t, Debit, txs[1].Kind)
		assert.Equal(t, "repayment transaction", txs[1].Description)
		assert.Equal(t, 40.0, txs[1].Amount)
	})

	t.Run("transactions wrapper", func(t *testing.T) {
		doc := decode(t, `{"transactions": [{"id": "a", "type": "receivable", "amount": 1, "customer_id": "c"}]}`)

		txs := NormalizeList(doc)

		require.Len(t, txs, 1)
		assert.Equal(t, "a", txs[0].ID)
		assert.Equal(t, Credit, txs[0].Kind)
	})

	t.Run("transaction_data wrapper", func(t *testing.T) {
		doc := decode(t, `{"transaction_data": [{"transaction_id": "b", "type": "payable", "amount": 2}], "next_cursor": "abc"}`)

		txs := NormalizeList(doc)

		require.Len(t, txs, 1)
		assert.Equal(t, "b", txs[0].ID)
		assert.Equal(t, Debit, txs[0].Kind)
	})

	t.Run("unknown types fold into debit", func(t *testing.T) {
		for _, remoteType := range []string{"repayment", "payable", "refund", ""} {
			tx := Normalize(map[string]any{"transaction_id": "x", "type": remoteType, "amount": 1.0})
			assert.Equal(t, Debit, tx.Kind, "type %q", remoteType)
		}
	})

	t.Run("id falls back to transaction_id", func(t *testing.T) {
		tx := Normalize(map[string]any{"id": "", "transaction_id": "fallback", "type": "receivable"})
		assert.Equal(t, "fallback", tx.ID)
	})

	t.Run("occurredAt and accountRef fall back to canonical keys", func(t *testing.T) {
		tx := Normalize(map[string]any{"id": "1", "type": "receivable", "date": "2024-01-01", "accountId": ""})
		assert.Equal(t, "2024-01-01", tx.OccurredAt)
	})

	t.Run("numeric ids are stringified", func(t *testing.T) {
		doc := decode(t, `[{"transaction_id": 12345678901, "type": "receivable", "amount": "10.25"}]`)

		txs := NormalizeList(doc)

		require.Len(t, txs, 1)
		assert.Equal(t, "12345678901", txs[0].ID)
		assert.Equal(t, 10.25, txs[0].Amount)
	})

	t.Run("non-object elements are skipped", func(t *testing.T) {
		doc := decode(t, `[1, "two", null, {"transaction_id": "ok", "type": "receivable"}]`)

		txs := NormalizeList(doc)

		require.Len(t, txs, 1)
		assert.Equal(t, "ok", txs[0].ID)
	})

	t.Run("unrecognized payloads yield an empty list", func(t *testing.T) {
		for name, payload := range map[string]any{
			"nil":            nil,
			"string":         "nope",
			"number":         json.Number("3"),
			"unknown object": map[string]any{"data": []any{}},
			"wrong type":     map[string]any{"transactions": "not-a-list"},
		} {
			t.Run(name, func(t *testing.T) {
				txs := NormalizeList(payload)
				assert.NotNil(t, txs)
				assert.Empty(t, txs)
			})
		}
	})
}

func TestNormalizeCanonicalPassThrough(t *testing.T) {
	canonical := Transaction{
		ID:          "1",
		Kind:        Credit,
		Amount:      100.50,
		Description: "Salary deposit",
		OccurredAt:  "2024-01-15T10:30:00Z",
		AccountRef:  "acc123",
	}

	raw, err := json.Marshal([]Transaction{canonical})
	require.NoError(t, err)

	t.Run("already canonical record is unchanged", func(t *testing.T) {
		txs := NormalizeList(decode(t, string(raw)))

		require.Len(t, txs, 1)
		assert.Equal(t, canonical, txs[0])
	})

	t.Run("normalizing twice is a no-op", func(t *testing.T) {
		once := NormalizeList(decode(t, string(raw)))
		again, err := json.Marshal(once)
		require.NoError(t, err)

		assert.Equal(t, once, NormalizeList(decode(t, string(again))))
	})

	t.Run("canonical type is kept verbatim", func(t *testing.T) {
		tx := Normalize(map[string]any{"id": "9", "type": "debit", "amount": 5.0, "accountId": "acc"})
		assert.Equal(t, Debit, tx.Kind)
		assert.Equal(t, "", tx.Description)
	})
}

func TestToRemote(t *testing.T) {
	credit := Transaction{ID: "1", Kind: Credit, Amount: 10, Description: "in", OccurredAt: "2024-01-01", AccountRef: "acc"}
	debit := Transaction{ID: "2", Kind: Debit, Amount: 5, Description: "out", OccurredAt: "2024-01-02", AccountRef: "acc"}

	assert.Equal(t, RemoteTransaction{
		TransactionID: "1",
		Type:          RemoteReceivable,
		Amount:        10,
		CustomerID:    "acc",
		CreatedAt:     "2024-01-01",
		Description:   "in",
	}, ToRemote(credit))
	assert.Equal(t, RemotePayable, ToRemote(debit).Type)

	t.Run("remote form normalizes back to the same kind", func(t *testing.T) {
		for _, tx := range []Transaction{credit, debit} {
			raw, err := json.Marshal(ToRemote(tx))
			require.NoError(t, err)

			doc := decode(t, string(raw))
			got := Normalize(doc.(map[string]any))
			assert.Equal(t, tx, got)
		}
	})
}

func TestKindValid(t *testing.T) {
	assert.True(t, Credit.Valid())
	assert.True(t, Debit.Valid())
	assert.False(t, Kind("receivable").Valid())
	assert.False(t, Kind("").Valid())
}

func TestParseCanonical(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		txs, err := ParseCanonical([]byte(`[{"id":"1","type":"credit","amount":1.5,"description":"d","date":"2024-01-01","accountId":"a"}]`))
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, 1.5, txs[0].Amount)
	})

	t.Run("empty array", func(t *testing.T) {
		txs, err := ParseCanonical([]byte(`[]`))
		require.NoError(t, err)
		assert.NotNil(t, txs)
		assert.Empty(t, txs)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseCanonical([]byte(`{"broken"`))
		assert.Error(t, err)
	})

	t.Run("object instead of array", func(t *testing.T) {
		_, err := ParseCanonical([]byte(`{"id":"1"}`))
		assert.Error(t, err)
	})
}
