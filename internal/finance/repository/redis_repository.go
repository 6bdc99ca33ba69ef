package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis key layout.
const (
	redisTransactionKeyPrefix      = "pfvault:transaction:"
	redisTransactionSetKey         = "pfvault:transactions"
	redisTransactionMonthKeyPrefix = "pfvault:transactions:by-month:"
	redisBudgetKeyPrefix           = "pfvault:budget:"
	redisBudgetSetKey              = "pfvault:budgets"
)

// maxWatchAttempts bounds optimistic WATCH/MULTI retries when a watched key changes mid-flight.
const maxWatchAttempts = 5

func transactionKey(id string) string {
	return redisTransactionKeyPrefix + id
}

func transactionMonthKey(monthYear string) string {
	return redisTransactionMonthKeyPrefix + monthYear
}

func budgetKey(category string) string {
	return redisBudgetKeyPrefix + category
}

// watch runs fn under WATCH on keys, retrying while a concurrent writer invalidates the transaction.
func watch(ctx context.Context, client redis.UniversalClient, fn func(*redis.Tx) error, keys ...string) error {
	var err error
	for range maxWatchAttempts {
		err = client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// loadMembers resolves the ids of set into their stored JSON values. Ids whose key no
// longer exists are skipped.
func loadMembers(
	ctx context.Context,
	client redis.UniversalClient,
	set string,
	keyOf func(string) string,
) ([]string, error) {
	ids, err := client.SMembers(ctx, set).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyOf(id)
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result, nil
}
