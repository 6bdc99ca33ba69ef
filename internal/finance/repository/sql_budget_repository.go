package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/allisson/pfvault/internal/database"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

type budgetQueries struct {
	upsert string
	create string
	get    string
	getAll string
	delete string
}

var sqliteBudgetQueries = budgetQueries{
	upsert: `INSERT INTO budgets (category, iv, content) VALUES (?, ?, ?)
			 ON CONFLICT (category) DO UPDATE SET iv = excluded.iv, content = excluded.content`,
	create: `INSERT INTO budgets (category, iv, content) VALUES (?, ?, ?)
			 ON CONFLICT (category) DO NOTHING`,
	get:    `SELECT category, iv, content FROM budgets WHERE category = ?`,
	getAll: `SELECT category, iv, content FROM budgets`,
	delete: `DELETE FROM budgets WHERE category = ?`,
}

var postgresBudgetQueries = budgetQueries{
	upsert: `INSERT INTO budgets (category, iv, content) VALUES ($1, $2, $3)
			 ON CONFLICT (category) DO UPDATE SET iv = EXCLUDED.iv, content = EXCLUDED.content`,
	create: `INSERT INTO budgets (category, iv, content) VALUES ($1, $2, $3)
			 ON CONFLICT (category) DO NOTHING`,
	get:    `SELECT category, iv, content FROM budgets WHERE category = $1`,
	getAll: `SELECT category, iv, content FROM budgets`,
	delete: `DELETE FROM budgets WHERE category = $1`,
}

var mysqlBudgetQueries = budgetQueries{
	upsert: `INSERT INTO budgets (category, iv, content) VALUES (?, ?, ?)
			 ON DUPLICATE KEY UPDATE iv = VALUES(iv), content = VALUES(content)`,
	create: `INSERT IGNORE INTO budgets (category, iv, content) VALUES (?, ?, ?)`,
	get:    sqliteBudgetQueries.get,
	getAll: sqliteBudgetQueries.getAll,
	delete: sqliteBudgetQueries.delete,
}

// SQLBudgetRepository persists StoredBudget rows in the budgets table, keyed by category.
type SQLBudgetRepository struct {
	db      *sql.DB
	queries budgetQueries
}

// Put inserts or fully overwrites the budget for budget.Category.
func (r *SQLBudgetRepository) Put(ctx context.Context, budget *financeDomain.StoredBudget) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, r.queries.upsert, budget.Category, budget.Data.IV, budget.Data.Content)
	if err != nil {
		return storageError(err, "failed to put budget")
	}
	return nil
}

// Create inserts the budget only if its category is free.
// Returns ErrBudgetAlreadyExists when a row for the category is already present.
func (r *SQLBudgetRepository) Create(ctx context.Context, budget *financeDomain.StoredBudget) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, r.queries.create, budget.Category, budget.Data.IV, budget.Data.Content)
	if err != nil {
		return storageError(err, "failed to create budget")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageError(err, "failed to create budget")
	}
	if affected == 0 {
		return financeDomain.ErrBudgetAlreadyExists
	}
	return nil
}

// Get returns the budget for category or ErrBudgetNotFound.
func (r *SQLBudgetRepository) Get(ctx context.Context, category string) (*financeDomain.StoredBudget, error) {
	querier := database.GetTx(ctx, r.db)

	var budget financeDomain.StoredBudget
	err := querier.QueryRowContext(ctx, r.queries.get, category).Scan(
		&budget.Category,
		&budget.Data.IV,
		&budget.Data.Content,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeDomain.ErrBudgetNotFound
		}
		return nil, storageError(err, "failed to get budget")
	}
	return &budget, nil
}

// GetAll returns every stored budget in no particular order.
func (r *SQLBudgetRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredBudget, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, r.queries.getAll)
	if err != nil {
		return nil, storageError(err, "failed to list budgets")
	}
	defer func() {
		_ = rows.Close()
	}()

	var budgets []*financeDomain.StoredBudget
	for rows.Next() {
		var budget financeDomain.StoredBudget
		if err := rows.Scan(&budget.Category, &budget.Data.IV, &budget.Data.Content); err != nil {
			return nil, storageError(err, "failed to scan budget")
		}
		budgets = append(budgets, &budget)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to iterate budgets")
	}

	return budgets, nil
}

// Delete removes the budget for category. Deleting a missing category is not an error.
func (r *SQLBudgetRepository) Delete(ctx context.Context, category string) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, r.queries.delete, category); err != nil {
		return storageError(err, "failed to delete budget")
	}
	return nil
}

// NewSQLiteBudgetRepository creates a budget repository for SQLite.
func NewSQLiteBudgetRepository(db *sql.DB) *SQLBudgetRepository {
	return &SQLBudgetRepository{db: db, queries: sqliteBudgetQueries}
}

// NewPostgreSQLBudgetRepository creates a budget repository for PostgreSQL.
func NewPostgreSQLBudgetRepository(db *sql.DB) *SQLBudgetRepository {
	return &SQLBudgetRepository{db: db, queries: postgresBudgetQueries}
}

// NewMySQLBudgetRepository creates a budget repository for MySQL.
func NewMySQLBudgetRepository(db *sql.DB) *SQLBudgetRepository {
	return &SQLBudgetRepository{db: db, queries: mysqlBudgetQueries}
}

// NewSQLBudgetRepository picks the budget repository matching driver.
func NewSQLBudgetRepository(db *sql.DB, driver string) (*SQLBudgetRepository, error) {
	switch driver {
	case database.DriverSQLite:
		return NewSQLiteBudgetRepository(db), nil
	case database.DriverPostgres:
		return NewPostgreSQLBudgetRepository(db), nil
	case database.DriverMySQL:
		return NewMySQLBudgetRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
