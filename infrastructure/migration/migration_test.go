package migration

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
)

func TestScripts_Ordered(t *testing.T) {
	list, err := Scripts()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "0001_init", list[0].Version)
	assert.Equal(t, "0002_summary_unique", list[1].Version)
	assert.Contains(t, list[0].SQL, "CREATE TABLE IF NOT EXISTS campaign_analytics_summaries")
	assert.Contains(t, list[1].SQL, "campaign_analytics_summaries_campaign_id_key")
}

func TestApply_SkipsAppliedVersions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init"))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaign_analytics_summaries")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs("0002_summary_unique").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	done, err := Apply(context.Background(), postgres.Wrap(db))
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_summary_unique"}, done)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	done, err := Apply(context.Background(), postgres.Wrap(db))
	assert.Error(t, err)
	assert.Empty(t, done)
	assert.NoError(t, mock.ExpectationsWereMet())
}
