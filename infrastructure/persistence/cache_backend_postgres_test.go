package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"portfolio-site/infrastructure/cache"
)

func TestPostgresCacheBackend_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	backend := NewPostgresCacheBackend(db, "yt_cache")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM portfolio_cache WHERE namespace=$1 AND cache_key=$2`)).
		WithArgs("yt_cache", "channel_data").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"data":{"title":"El1as.F"},"timestamp":1700000000000}`))

	value, err := backend.Get(context.Background(), "channel_data")
	require.NoError(t, err)
	require.Equal(t, `{"data":{"title":"El1as.F"},"timestamp":1700000000000}`, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCacheBackend_GetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	backend := NewPostgresCacheBackend(db, "yt_cache")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM portfolio_cache WHERE namespace=$1 AND cache_key=$2`)).
		WithArgs("yt_cache", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = backend.Get(context.Background(), "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCacheBackend_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	backend := NewPostgresCacheBackend(db, "yt_cache")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO portfolio_cache(namespace, cache_key, value, updated_at)`)).
		WithArgs("yt_cache", "latest_uploads_50", `{"data":[],"timestamp":1}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = backend.Set(context.Background(), "latest_uploads_50", `{"data":[],"timestamp":1}`)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCacheBackend_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	backend := NewPostgresCacheBackend(db, "yt_cache")

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM portfolio_cache WHERE namespace=$1`)).
		WithArgs("yt_cache").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = backend.Clear(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
