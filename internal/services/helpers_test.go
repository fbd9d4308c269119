package services

import (
	"io"
	"log/slog"
	"testing"

	"sms-ledger/internal/database"
	"sms-ledger/internal/repositories"
	"sms-ledger/internal/storage"

	"github.com/stretchr/testify/require"
)

// newEncryptedLedger builds the ledger repository over an encrypted in-memory store
func newEncryptedLedger(t *testing.T) (repositories.LedgerRepositoryInterface, *database.DB) {
	t.Helper()

	db := database.SetupTestDB(t)
	store, err := storage.NewEncryptedStore(
		repositories.NewKVRepository(db.DB),
		storage.DeriveKey("test-passphrase", "test-salt"),
	)
	require.NoError(t, err)

	return repositories.NewLedgerRepository(store), db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
