// Package migration aplica os scripts SQL embarcados no binário, em ordem,
// registrando cada versão em schema_migrations.
package migration

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var scripts embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type Script struct {
	Version string
	SQL     string
}

// Scripts lista os scripts embarcados ordenados pela versão
func Scripts() ([]Script, error) {
	entries, err := fs.ReadDir(scripts, "sql")
	if err != nil {
		return nil, err
	}

	result := make([]Script, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		content, err := fs.ReadFile(scripts, "sql/"+entry.Name())
		if err != nil {
			return nil, err
		}

		result = append(result, Script{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// Apply executa os scripts pendentes, cada um na sua própria transação.
// Retorna as versões aplicadas nesta execução.
func Apply(ctx context.Context, conn postgres.Conn) ([]string, error) {
	if _, err := conn.Exec(ctx, createVersionTable); err != nil {
		return nil, errors.Wrap(err, "erro ao criar tabela schema_migrations")
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return nil, err
	}

	list, err := Scripts()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler scripts de migração")
	}

	var done []string
	for _, script := range list {
		if applied[script.Version] {
			continue
		}

		err := conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
			if _, err := q.Exec(ctx, script.SQL); err != nil {
				return err
			}
			_, err := q.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", script.Version)
			return err
		})
		if err != nil {
			return done, errors.Wrapf(err, "erro ao aplicar migração %s", script.Version)
		}

		logrus.WithField("version", script.Version).Info("Migração aplicada")
		done = append(done, script.Version)
	}

	return done, nil
}

func appliedVersions(ctx context.Context, q postgres.Queryer) (map[string]bool, error) {
	rows, err := q.Query(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar migrações aplicadas")
	}
	defer rows.Close()

	versions := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions[v] = true
	}

	return versions, rows.Err()
}
