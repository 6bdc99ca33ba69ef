package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

type redisTransaction struct {
	ID        string    `json:"id"`
	IV        string    `json:"iv"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	MonthYear string    `json:"month_year"`
}

func (r redisTransaction) toDomain() *financeDomain.StoredTransaction {
	return &financeDomain.StoredTransaction{
		ID:        r.ID,
		Data:      cryptoDomain.Envelope{IV: r.IV, Content: r.Content},
		CreatedAt: r.CreatedAt,
		MonthYear: r.MonthYear,
	}
}

// RedisTransactionRepository persists StoredTransaction values in Redis.
//
// Each record is a JSON string under pfvault:transaction:<id>. The set
// pfvault:transactions lists every id and pfvault:transactions:by-month:<YYYY-MM>
// is the by-month index.
type RedisTransactionRepository struct {
	client redis.UniversalClient
}

// Put inserts or fully overwrites the record keyed by tx.ID.
// A changed month bucket moves the id between index sets in the same MULTI.
func (r *RedisTransactionRepository) Put(ctx context.Context, tx *financeDomain.StoredTransaction) error {
	data, err := json.Marshal(redisTransaction{
		ID:        tx.ID,
		IV:        tx.Data.IV,
		Content:   tx.Data.Content,
		CreatedAt: tx.CreatedAt.UTC(),
		MonthYear: tx.MonthYear,
	})
	if err != nil {
		return storageError(err, "failed to encode transaction")
	}

	key := transactionKey(tx.ID)
	err = watch(ctx, r.client, func(rtx *redis.Tx) error {
		previousMonth, err := r.monthOf(ctx, rtx, key)
		if err != nil {
			return err
		}

		_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, redisTransactionSetKey, tx.ID)
			if previousMonth != "" && previousMonth != tx.MonthYear {
				pipe.SRem(ctx, transactionMonthKey(previousMonth), tx.ID)
			}
			pipe.SAdd(ctx, transactionMonthKey(tx.MonthYear), tx.ID)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return storageError(err, "failed to put transaction")
	}
	return nil
}

// Get returns the record keyed by id or ErrTransactionNotFound.
func (r *RedisTransactionRepository) Get(ctx context.Context, id string) (*financeDomain.StoredTransaction, error) {
	data, err := r.client.Get(ctx, transactionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, financeDomain.ErrTransactionNotFound
		}
		return nil, storageError(err, "failed to get transaction")
	}

	var record redisTransaction
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, storageError(err, "failed to decode transaction")
	}
	return record.toDomain(), nil
}

// GetAll returns every stored transaction in no particular order.
func (r *RedisTransactionRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredTransaction, error) {
	return r.list(ctx, redisTransactionSetKey)
}

// GetAllByMonth returns the transactions indexed under monthYear ("YYYY-MM").
func (r *RedisTransactionRepository) GetAllByMonth(
	ctx context.Context,
	monthYear string,
) ([]*financeDomain.StoredTransaction, error) {
	return r.list(ctx, transactionMonthKey(monthYear))
}

// Delete removes the record keyed by id and its index entries. Deleting a missing id is not an error.
func (r *RedisTransactionRepository) Delete(ctx context.Context, id string) error {
	key := transactionKey(id)
	err := watch(ctx, r.client, func(rtx *redis.Tx) error {
		month, err := r.monthOf(ctx, rtx, key)
		if err != nil {
			return err
		}

		_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, redisTransactionSetKey, id)
			if month != "" {
				pipe.SRem(ctx, transactionMonthKey(month), id)
			}
			return nil
		})
		return err
	}, key)
	if err != nil {
		return storageError(err, "failed to delete transaction")
	}
	return nil
}

// monthOf returns the month bucket currently stored under key, or "" when the key is absent.
func (r *RedisTransactionRepository) monthOf(ctx context.Context, rtx *redis.Tx, key string) (string, error) {
	data, err := rtx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var record redisTransaction
	if err := json.Unmarshal(data, &record); err != nil {
		return "", err
	}
	return record.MonthYear, nil
}

func (r *RedisTransactionRepository) list(ctx context.Context, set string) ([]*financeDomain.StoredTransaction, error) {
	values, err := loadMembers(ctx, r.client, set, transactionKey)
	if err != nil {
		return nil, storageError(err, "failed to list transactions")
	}

	transactions := make([]*financeDomain.StoredTransaction, 0, len(values))
	for _, v := range values {
		var record redisTransaction
		if err := json.Unmarshal([]byte(v), &record); err != nil {
			return nil, storageError(err, "failed to decode transaction")
		}
		transactions = append(transactions, record.toDomain())
	}
	return transactions, nil
}

// NewRedisTransactionRepository creates a transaction repository backed by client.
func NewRedisTransactionRepository(client redis.UniversalClient) *RedisTransactionRepository {
	return &RedisTransactionRepository{client: client}
}
