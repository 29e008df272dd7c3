package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const dateLayout = "2006-01-02"

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func rowsAffected(result sql.Result) int64 {
	n, err := result.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// validID indica se o id pode ser consultado em colunas uuid.
// Ids malformados vindos da rota ou da fila são tratados como inexistentes.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
