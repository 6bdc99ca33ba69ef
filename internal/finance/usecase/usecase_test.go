package usecase

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoRepository "github.com/allisson/pfvault/internal/crypto/repository"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
	"github.com/allisson/pfvault/internal/database"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger returns a JSON logger writing into the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

// newTestCodec returns a codec backed by a fresh in-memory key store, so every call yields a different key.
func newTestCodec(t *testing.T) *cryptoService.CodecService {
	t.Helper()

	keyRepo := cryptoRepository.NewBlobKeyRepository(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = keyRepo.Close() })

	keyManager := cryptoService.NewKeyManager(keyRepo, cryptoDomain.AESGCM, discardLogger())
	t.Cleanup(keyManager.Close)

	return cryptoService.NewCodec(keyManager, cryptoService.NewAEADManager())
}

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(context.Background(), database.Config{
		Driver:             database.DriverSQLite,
		ConnectionString:   filepath.Join(t.TempDir(), "pfvault.db"),
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
		ConnMaxLifetime:    time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db, database.DriverSQLite))
	return db
}

func newTransaction(id, amount string, txType financeDomain.TransactionType, category, date string) *financeDomain.Transaction {
	return &financeDomain.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
		Category:    category,
		Description: "desc " + id,
		Date:        date,
	}
}

func newBudget(category, limit string) *financeDomain.Budget {
	return &financeDomain.Budget{
		Category: category,
		Limit:    decimal.RequireFromString(limit),
		Spent:    decimal.Zero,
	}
}

func transactionIDs(items []*financeDomain.Transaction) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
