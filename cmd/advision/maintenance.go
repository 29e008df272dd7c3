package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/advision-api/internal/usecases/maintaining"
)

var errNotConfirmed = errors.New("operação destrutiva: use --yes para confirmar")

func newCleanupSummariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-summaries",
		Short: "Cria resumos ausentes e remove duplicados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				result, err := svc.maintainer.CleanupSummaries(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Resumos criados: %d\nDuplicados removidos: %d\n", result.Created, result.Removed)
				return nil
			})
		},
	}
}

func newFixTimestampsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix-timestamps",
		Short: "Converte colunas timestamp sem fuso para timestamptz",
		Long: `Converte as colunas "timestamp without time zone" do schema public para
"timestamp with time zone", interpretando os valores no fuso TIME_ZONE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				columns, err := svc.maintainer.FixTimestamps(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(columns) == 0 {
					fmt.Fprintln(out, "Nenhuma coluna para converter")
					return nil
				}
				for _, col := range columns {
					fmt.Fprintf(out, "Convertida: %s.%s\n", col.Table, col.Column)
				}
				return nil
			})
		},
	}
}

func newResetCmd() *cobra.Command {
	var opts maintaining.ResetOptions
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Apaga os dados do banco",
		Long: `Apaga todos os dados respeitando as chaves estrangeiras ou, com --demo-only,
apenas os usuários de demonstração e o que pertence a eles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}

			return withServices(cmd, func(ctx context.Context, svc *services) error {
				result, err := svc.maintainer.Reset(ctx, opts)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, table := range result.Deleted {
					fmt.Fprintf(out, "%s: %d linhas removidas\n", table.Table, table.Rows)
				}
				if opts.DemoOnly {
					fmt.Fprintf(out, "Usuários de demonstração removidos: %d\n", result.UsersRemoved)
				}
				if result.Reseeded {
					fmt.Fprintln(out, "Dados de demonstração recriados")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&opts.DemoOnly, "demo-only", false, "Remove apenas os dados dos usuários de demonstração")
	cmd.Flags().BoolVar(&opts.Reseed, "reseed", false, "Recria os dados de demonstração após a limpeza")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirma a operação")
	return cmd
}

func newVerifyDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-db",
		Short: "Verifica conexão, tabelas e contagens do banco",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				report, err := svc.maintainer.Verify(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Servidor: %s\nBanco: %s\nUsuário: %s\n", report.Info.Version, report.Info.Database, report.Info.User)
				fmt.Fprintf(out, "Migrações aplicadas: %d\n", len(report.AppliedVersions))

				for _, count := range report.Counts {
					fmt.Fprintf(out, "  %-32s %d\n", count.Table, count.Rows)
				}
				for _, table := range report.MissingTables {
					fmt.Fprintf(out, "Tabela ausente: %s\n", table)
				}
				if report.DuplicateSummary > 0 {
					fmt.Fprintf(out, "Resumos duplicados: %d (execute cleanup-summaries)\n", report.DuplicateSummary)
				}
				for _, col := range report.NaiveColumns {
					fmt.Fprintf(out, "Coluna sem fuso: %s.%s (execute fix-timestamps)\n", col.Table, col.Column)
				}

				if !report.Healthy() {
					return errors.New("banco de dados com pendências")
				}
				fmt.Fprintln(out, "Banco de dados OK")
				return nil
			})
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações SQL pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply, closeConn, err := loadMigrator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeConn()

			applied, err := apply(cmd.Context())
			out := cmd.OutOrStdout()
			for _, version := range applied {
				fmt.Fprintf(out, "Aplicada: %s\n", version)
			}
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(out, "Nenhuma migração pendente")
			}
			return nil
		},
	}
}
