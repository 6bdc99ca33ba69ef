package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/allisson/pfvault/internal/database"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

type transactionQueries struct {
	upsert        string
	get           string
	getAll        string
	getAllByMonth string
	delete        string
}

var sqliteTransactionQueries = transactionQueries{
	upsert: `INSERT INTO transactions (id, iv, content, created_at, month_year)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (id) DO UPDATE SET
			 	iv = excluded.iv,
			 	content = excluded.content,
			 	created_at = excluded.created_at,
			 	month_year = excluded.month_year`,
	get:           `SELECT id, iv, content, created_at, month_year FROM transactions WHERE id = ?`,
	getAll:        `SELECT id, iv, content, created_at, month_year FROM transactions`,
	getAllByMonth: `SELECT id, iv, content, created_at, month_year FROM transactions WHERE month_year = ?`,
	delete:        `DELETE FROM transactions WHERE id = ?`,
}

var postgresTransactionQueries = transactionQueries{
	upsert: `INSERT INTO transactions (id, iv, content, created_at, month_year)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET
			 	iv = EXCLUDED.iv,
			 	content = EXCLUDED.content,
			 	created_at = EXCLUDED.created_at,
			 	month_year = EXCLUDED.month_year`,
	get:           `SELECT id, iv, content, created_at, month_year FROM transactions WHERE id = $1`,
	getAll:        `SELECT id, iv, content, created_at, month_year FROM transactions`,
	getAllByMonth: `SELECT id, iv, content, created_at, month_year FROM transactions WHERE month_year = $1`,
	delete:        `DELETE FROM transactions WHERE id = $1`,
}

var mysqlTransactionQueries = transactionQueries{
	upsert: `INSERT INTO transactions (id, iv, content, created_at, month_year)
			 VALUES (?, ?, ?, ?, ?)
			 ON DUPLICATE KEY UPDATE
			 	iv = VALUES(iv),
			 	content = VALUES(content),
			 	created_at = VALUES(created_at),
			 	month_year = VALUES(month_year)`,
	get:           sqliteTransactionQueries.get,
	getAll:        sqliteTransactionQueries.getAll,
	getAllByMonth: sqliteTransactionQueries.getAllByMonth,
	delete:        sqliteTransactionQueries.delete,
}

// SQLTransactionRepository persists StoredTransaction rows in the transactions table.
// The month_year column is the by-month index.
type SQLTransactionRepository struct {
	db      *sql.DB
	queries transactionQueries
}

// Put inserts or fully overwrites the row keyed by tx.ID, including its month bucket.
func (r *SQLTransactionRepository) Put(ctx context.Context, tx *financeDomain.StoredTransaction) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(
		ctx,
		r.queries.upsert,
		tx.ID,
		tx.Data.IV,
		tx.Data.Content,
		formatCreatedAt(tx.CreatedAt),
		tx.MonthYear,
	)
	if err != nil {
		return storageError(err, "failed to put transaction")
	}
	return nil
}

// Get returns the row keyed by id or ErrTransactionNotFound.
func (r *SQLTransactionRepository) Get(ctx context.Context, id string) (*financeDomain.StoredTransaction, error) {
	querier := database.GetTx(ctx, r.db)

	tx, err := scanTransaction(querier.QueryRowContext(ctx, r.queries.get, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeDomain.ErrTransactionNotFound
		}
		return nil, storageError(err, "failed to get transaction")
	}
	return tx, nil
}

// GetAll returns every stored transaction in no particular order.
func (r *SQLTransactionRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredTransaction, error) {
	return r.list(ctx, r.queries.getAll)
}

// GetAllByMonth returns the transactions indexed under monthYear ("YYYY-MM").
func (r *SQLTransactionRepository) GetAllByMonth(
	ctx context.Context,
	monthYear string,
) ([]*financeDomain.StoredTransaction, error) {
	return r.list(ctx, r.queries.getAllByMonth, monthYear)
}

// Delete removes the row keyed by id. Deleting a missing id is not an error.
func (r *SQLTransactionRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, r.queries.delete, id); err != nil {
		return storageError(err, "failed to delete transaction")
	}
	return nil
}

func (r *SQLTransactionRepository) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*financeDomain.StoredTransaction, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to list transactions")
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*financeDomain.StoredTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan transaction")
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to iterate transactions")
	}

	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*financeDomain.StoredTransaction, error) {
	var (
		tx        financeDomain.StoredTransaction
		createdAt string
	)

	if err := row.Scan(&tx.ID, &tx.Data.IV, &tx.Data.Content, &createdAt, &tx.MonthYear); err != nil {
		return nil, err
	}

	t, err := parseCreatedAt(createdAt)
	if err != nil {
		return nil, err
	}
	tx.CreatedAt = t

	return &tx, nil
}

// NewSQLiteTransactionRepository creates a transaction repository for SQLite.
func NewSQLiteTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db, queries: sqliteTransactionQueries}
}

// NewPostgreSQLTransactionRepository creates a transaction repository for PostgreSQL.
func NewPostgreSQLTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db, queries: postgresTransactionQueries}
}

// NewMySQLTransactionRepository creates a transaction repository for MySQL.
func NewMySQLTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db, queries: mysqlTransactionQueries}
}

// NewSQLTransactionRepository picks the transaction repository matching driver.
func NewSQLTransactionRepository(db *sql.DB, driver string) (*SQLTransactionRepository, error) {
	switch driver {
	case database.DriverSQLite:
		return NewSQLiteTransactionRepository(db), nil
	case database.DriverPostgres:
		return NewPostgreSQLTransactionRepository(db), nil
	case database.DriverMySQL:
		return NewMySQLTransactionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
