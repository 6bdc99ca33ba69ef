package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/pfvault/internal/errors"
)

func validTransaction() *Transaction {
	return &Transaction{
		ID:          "tx-1",
		Amount:      decimal.RequireFromString("42.50"),
		Type:        Expense,
		Category:    "Food",
		Description: "groceries",
		Date:        "2024-03-15",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr bool
	}{
		{name: "valid expense", mutate: func(tx *Transaction) {}},
		{name: "valid income", mutate: func(tx *Transaction) { tx.Type = Income }},
		{name: "empty description allowed", mutate: func(tx *Transaction) { tx.Description = "" }},
		{name: "missing id", mutate: func(tx *Transaction) { tx.ID = "" }, wantErr: true},
		{name: "blank id", mutate: func(tx *Transaction) { tx.ID = "   " }, wantErr: true},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "unknown type", mutate: func(tx *Transaction) { tx.Type = "transfer" }, wantErr: true},
		{name: "missing category", mutate: func(tx *Transaction) { tx.Category = "" }, wantErr: true},
		{name: "invalid date", mutate: func(tx *Transaction) { tx.Date = "2024-02-30" }, wantErr: true},
		{name: "missing date", mutate: func(tx *Transaction) { tx.Date = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(tx)

			err := tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_MonthYear(t *testing.T) {
	tx := validTransaction()
	assert.Equal(t, "2024-03", tx.MonthYear())

	tx.Date = "2024"
	assert.Equal(t, "", tx.MonthYear())
}

func TestTransaction_JSON(t *testing.T) {
	t.Run("amount accepts a number", func(t *testing.T) {
		var tx Transaction
		err := json.Unmarshal([]byte(`{"id":"a","amount":12.5,"type":"income","category":"Salary","description":"","date":"2024-01-31"}`), &tx)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.5").Equal(tx.Amount))
		assert.Equal(t, Income, tx.Type)
	})

	t.Run("field names", func(t *testing.T) {
		data, err := json.Marshal(validTransaction())
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.ElementsMatch(t,
			[]string{"id", "amount", "type", "category", "description", "date"},
			keys(fields),
		)
	})
}

func TestBudget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
	}{
		{name: "valid", budget: Budget{Category: "Food", Limit: decimal.NewFromInt(300)}},
		{name: "spent carried", budget: Budget{Category: "Food", Limit: decimal.NewFromInt(300), Spent: decimal.NewFromInt(500)}},
		{name: "missing category", budget: Budget{Limit: decimal.NewFromInt(300)}, wantErr: true},
		{name: "zero limit", budget: Budget{Category: "Food"}, wantErr: true},
		{name: "negative limit", budget: Budget{Category: "Food", Limit: decimal.NewFromInt(-10)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewBudgetAlreadyExistsError(t *testing.T) {
	err := NewBudgetAlreadyExistsError("Food")

	assert.ErrorIs(t, err, ErrBudgetAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), `"Food"`)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
