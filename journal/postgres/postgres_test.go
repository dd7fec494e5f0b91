package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ajiwo/crptgate/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresTest(t *testing.T) *Backend {
	t.Helper()

	backend, err := New(Config{
		ConnString: os.Getenv("TEST_POSTGRES_DSN"),
	})
	if err != nil {
		t.Skipf("Postgres not available, skipping tests: %v", err)
	}

	t.Cleanup(func() {
		_, _ = backend.GetPool().Exec(context.Background(), `DELETE FROM crptgate_journal WHERE doc_id LIKE 'test-%'`)
		_ = backend.Close()
	})

	return backend
}

func TestPostgres_Record(t *testing.T) {
	backend := setupPostgresTest(t)
	ctx := context.Background()

	docID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	entry := journal.Entry{
		DocID:     docID,
		Status:    201,
		Attempted: time.Now(),
		Err:       "",
	}
	require.NoError(t, backend.Record(ctx, entry))

	var status int
	var errText string
	err := backend.GetPool().QueryRow(ctx, `
		SELECT status, err FROM crptgate_journal WHERE doc_id = $1
	`, docID).Scan(&status, &errText)
	require.NoError(t, err)
	assert.Equal(t, 201, status)
	assert.Empty(t, errText)
}

func TestPostgres_RecordFailure(t *testing.T) {
	backend := setupPostgresTest(t)
	ctx := context.Background()

	docID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	entry := journal.Entry{
		DocID:     docID,
		Status:    0,
		Attempted: time.Now(),
		Err:       "connection refused",
	}
	require.NoError(t, backend.Record(ctx, entry))

	var errText string
	err := backend.GetPool().QueryRow(ctx, `
		SELECT err FROM crptgate_journal WHERE doc_id = $1
	`, docID).Scan(&errText)
	require.NoError(t, err)
	assert.Equal(t, "connection refused", errText)
}

func TestPostgres_RegisterRejectsBadConfig(t *testing.T) {
	_, err := journal.Create("postgres", 42)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
