package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quick-post/internal/crypto"
	"github.com/MKhiriev/go-quick-post/internal/logger"
)

const testNamespace = "com.yourapp.bluesky"

var testKDFParams = crypto.KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}

func newTestSQLiteStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock, crypto.Sealer) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sealer, err := crypto.NewSealer("secret", testNamespace, testKDFParams)
	require.NoError(t, err)

	l := logger.Nop()
	s := &sqliteStore{
		db:        &DB{DB: db, logger: l},
		sealer:    sealer,
		namespace: testNamespace,
		now:       func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) },
		logger:    l,
	}
	return s, mock, sealer
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSQLiteStore_Save_Success(t *testing.T) {
	s, mock, _ := newTestSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credentials")).
		WithArgs(testNamespace, "accessJwtKey", sqlmock.AnyArg(), "2026-10-15T09:30:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Save(context.Background(), "accessJwtKey", []byte("tok-123"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Save_ExecError(t *testing.T) {
	s, mock, _ := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(errors.New("disk full"))

	err := s.Save(context.Background(), "didKey", []byte("did:plc:abc"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Read ──────────────────────────────────────────────────────────────────────

func TestSQLiteStore_Read_Success(t *testing.T) {
	s, mock, sealer := newTestSQLiteStore(t)

	blob, err := sealer.Seal([]byte("did:plc:abc"), []byte("didKey"))
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM credentials WHERE (service = ? AND account = ?) LIMIT 1")).
		WithArgs(testNamespace, "didKey").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(blob))

	got, err := s.Read(context.Background(), "didKey")
	require.NoError(t, err)
	assert.Equal(t, []byte("did:plc:abc"), got)
}

func TestSQLiteStore_Read_NotFound(t *testing.T) {
	s, mock, _ := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM credentials").
		WithArgs(testNamespace, "accessJwtKey").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Read(context.Background(), "accessJwtKey")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestSQLiteStore_Read_QueryError(t *testing.T) {
	s, mock, _ := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM credentials").
		WillReturnError(errors.New("database is locked"))

	_, err := s.Read(context.Background(), "accessJwtKey")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
}

func TestSQLiteStore_Read_BlobFromOtherAccount(t *testing.T) {
	s, mock, sealer := newTestSQLiteStore(t)

	// sealed for didKey but stored under accessJwtKey
	blob, err := sealer.Seal([]byte("did:plc:abc"), []byte("didKey"))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value FROM credentials").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(blob))

	_, err = s.Read(context.Background(), "accessJwtKey")
	assert.ErrorIs(t, err, ErrSealing)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestSQLiteStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "row deleted", result: sqlmock.NewResult(0, 1)},
		{name: "absent row is not an error", result: sqlmock.NewResult(0, 0)},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, _ := newTestSQLiteStore(t)

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE (service = ? AND account = ?)")).
				WithArgs(testNamespace, "didKey")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := s.Delete(context.Background(), "didKey")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
