package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

type redisBudget struct {
	Category string `json:"category"`
	IV       string `json:"iv"`
	Content  string `json:"content"`
}

func (r redisBudget) toDomain() *financeDomain.StoredBudget {
	return &financeDomain.StoredBudget{
		Category: r.Category,
		Data:     cryptoDomain.Envelope{IV: r.IV, Content: r.Content},
	}
}

func encodeBudget(budget *financeDomain.StoredBudget) ([]byte, error) {
	return json.Marshal(redisBudget{
		Category: budget.Category,
		IV:       budget.Data.IV,
		Content:  budget.Data.Content,
	})
}

// RedisBudgetRepository persists StoredBudget values under pfvault:budget:<category>,
// with the set pfvault:budgets listing every category.
type RedisBudgetRepository struct {
	client redis.UniversalClient
}

// Put inserts or fully overwrites the budget for budget.Category.
func (r *RedisBudgetRepository) Put(ctx context.Context, budget *financeDomain.StoredBudget) error {
	data, err := encodeBudget(budget)
	if err != nil {
		return storageError(err, "failed to encode budget")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, budgetKey(budget.Category), data, 0)
		pipe.SAdd(ctx, redisBudgetSetKey, budget.Category)
		return nil
	})
	if err != nil {
		return storageError(err, "failed to put budget")
	}
	return nil
}

// Create inserts the budget only if its category is free.
// Returns ErrBudgetAlreadyExists when the category already has a budget.
func (r *RedisBudgetRepository) Create(ctx context.Context, budget *financeDomain.StoredBudget) error {
	data, err := encodeBudget(budget)
	if err != nil {
		return storageError(err, "failed to encode budget")
	}

	key := budgetKey(budget.Category)
	err = watch(ctx, r.client, func(rtx *redis.Tx) error {
		n, err := rtx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return financeDomain.ErrBudgetAlreadyExists
		}

		_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, redisBudgetSetKey, budget.Category)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, financeDomain.ErrBudgetAlreadyExists) {
			return err
		}
		return storageError(err, "failed to create budget")
	}
	return nil
}

// Get returns the budget for category or ErrBudgetNotFound.
func (r *RedisBudgetRepository) Get(ctx context.Context, category string) (*financeDomain.StoredBudget, error) {
	data, err := r.client.Get(ctx, budgetKey(category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, financeDomain.ErrBudgetNotFound
		}
		return nil, storageError(err, "failed to get budget")
	}

	var record redisBudget
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, storageError(err, "failed to decode budget")
	}
	return record.toDomain(), nil
}

// GetAll returns every stored budget in no particular order.
func (r *RedisBudgetRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredBudget, error) {
	values, err := loadMembers(ctx, r.client, redisBudgetSetKey, budgetKey)
	if err != nil {
		return nil, storageError(err, "failed to list budgets")
	}

	budgets := make([]*financeDomain.StoredBudget, 0, len(values))
	for _, v := range values {
		var record redisBudget
		if err := json.Unmarshal([]byte(v), &record); err != nil {
			return nil, storageError(err, "failed to decode budget")
		}
		budgets = append(budgets, record.toDomain())
	}
	return budgets, nil
}

// Delete removes the budget for category. Deleting a missing category is not an error.
func (r *RedisBudgetRepository) Delete(ctx context.Context, category string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, budgetKey(category))
		pipe.SRem(ctx, redisBudgetSetKey, category)
		return nil
	})
	if err != nil {
		return storageError(err, "failed to delete budget")
	}
	return nil
}

// NewRedisBudgetRepository creates a budget repository backed by client.
func NewRedisBudgetRepository(client redis.UniversalClient) *RedisBudgetRepository {
	return &RedisBudgetRepository{client: client}
}
