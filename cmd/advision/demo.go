package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSetupDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-demo",
		Short: "Popula o banco com os dados de demonstração",
		Long: `Cria usuários, credenciais, campanhas, anúncios, métricas diárias,
resumos, modelos preditivos, teste A/B, agendamentos e comentários de demonstração.

Pode ser executado mais de uma vez: registros existentes são reaproveitados.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Criando dados de demonstração...")

				result, err := svc.seeder.Run(ctx)
				if err != nil {
					return fmt.Errorf("erro ao criar dados de demonstração: %w", err)
				}

				fmt.Fprintf(out, "Usuários: %d\n", result.Users)
				fmt.Fprintf(out, "Credenciais: %d\n", result.APIKeys)
				fmt.Fprintf(out, "Campanhas: %d\n", result.Campaigns)
				fmt.Fprintf(out, "Anúncios: %d\n", result.Ads)
				fmt.Fprintf(out, "Dias de métricas: %d\n", result.AnalyticsDays)
				fmt.Fprintf(out, "Resumos: %d\n", result.Summaries)
				fmt.Fprintf(out, "Modelos: %d\n", result.Models)
				fmt.Fprintf(out, "Previsões: %d\n", result.Predictions)
				fmt.Fprintf(out, "Testes A/B: %d\n", result.ABTests)
				fmt.Fprintf(out, "Agendamentos: %d\n", result.Schedules)
				fmt.Fprintf(out, "Comentários: %d\n", result.Comments)
				fmt.Fprintln(out, "Dados de demonstração criados. Acesse com demo@advision.com / demo123")
				return nil
			})
		},
	}
}

func newUpdateSummariesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "update-analytics-summaries",
		Short: "Cria e atualiza os resumos de métricas das campanhas",
		Long: `Garante um resumo para cada campanha e recalcula os recém-criados,
os que estão com nota zero ou, com --force, todos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				out := cmd.OutOrStdout()

				result, err := svc.summaries.RefreshSummaries(ctx, force)
				if err != nil {
					return fmt.Errorf("erro ao atualizar resumos: %w", err)
				}

				fmt.Fprintf(out, "Created: %d\n", result.Created)
				fmt.Fprintf(out, "Updated: %d\n", result.Updated)
				fmt.Fprintf(out, "Total: %d\n", result.Total)
				if result.Failed > 0 {
					fmt.Fprintf(out, "Failed: %d\n", result.Failed)
				}

				if len(result.Top) > 0 {
					fmt.Fprintln(out, "\nTop campanhas por nota:")
					for i, summary := range result.Top {
						fmt.Fprintf(out, "%d. %s (%s) - %.2f\n", i+1, summary.CampaignTitle, summary.Platform, summary.PerformanceScore)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Atualiza todos os resumos, mesmo os já calculados")
	return cmd
}
