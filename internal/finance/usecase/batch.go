package usecase

import (
	"context"
	"errors"
	"log/slog"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// decryptBatch decrypts every row into a new T. Rows failing with ErrDecryptionFailed are
// logged at WARN and listed in FailedIDs; any other error is returned immediately.
func decryptBatch[S, T any](
	ctx context.Context,
	codec cryptoService.Codec,
	logger *slog.Logger,
	rows []S,
	keyOf func(S) string,
	envelopeOf func(S) cryptoDomain.Envelope,
) (*financeDomain.BatchResult[*T], error) {
	result := &financeDomain.BatchResult[*T]{
		Items:     make([]*T, 0, len(rows)),
		FailedIDs: []string{},
	}

	for _, row := range rows {
		item := new(T)
		if err := codec.Decrypt(ctx, envelopeOf(row), item); err != nil {
			if !errors.Is(err, cryptoDomain.ErrDecryptionFailed) {
				return nil, err
			}
			logger.Warn("skipping record that failed to decrypt",
				slog.String("key", keyOf(row)),
				slog.Any("error", err),
			)
			result.FailedIDs = append(result.FailedIDs, keyOf(row))
			continue
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}
