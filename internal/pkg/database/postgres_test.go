package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}, mock
}

func TestPostgresClient_GetDB(t *testing.T) {
	client, mock := newMockClient(t)

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Query(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("SELECT id FROM venues").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("venue-1"))

	var id string
	err := client.GetDB().Get(&id, "SELECT id FROM venues LIMIT 1")
	assert.NoError(t, err)
	assert.Equal(t, "venue-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_QueryError(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	var id string
	err := client.GetDB().Get(&id, "SELECT id FROM venues WHERE id = $1", "missing")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
