package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
)

// RunInitKey loads the application key, creating and persisting it when none exists yet.
// Running it again reports the existing key.
func RunInitKey(
	ctx context.Context,
	keyManager cryptoService.KeyManager,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := keyManager.GetOrCreateKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize key: %w", err)
	}

	logger.Info("encryption key ready",
		slog.String("key_id", key.ID),
		slog.String("algorithm", string(key.Algorithm)),
	)

	if format == FormatJSON {
		return writeJSON(writer, map[string]string{
			"key_id":    key.ID,
			"algorithm": string(key.Algorithm),
		})
	}

	_, _ = fmt.Fprintln(writer, "Encryption key ready")
	_, _ = fmt.Fprintf(writer, "Key ID: %s\n", key.ID)
	_, _ = fmt.Fprintf(writer, "Algorithm: %s\n", key.Algorithm)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: Back up the key store. Records cannot be decrypted without it.")
	return nil
}
