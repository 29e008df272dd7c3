// Package tasks define as tarefas de recálculo de resumos executadas em segundo plano.
package tasks

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/advision-api/infrastructure/queue"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	UpdateAllCampaignSummaries = "update_all_campaign_summaries"
	UpdateCampaignSummary      = "update_campaign_summary"
)

// Message é o corpo publicado na fila
type Message struct {
	Task       string `json:"task"`
	CampaignID string `json:"campaign_id,omitempty"`

	// CorrelationID liga a tarefa à requisição que a originou
	CorrelationID string `json:"correlation_id,omitempty"`
}

func (m Message) Validate() error {
	switch m.Task {
	case UpdateAllCampaignSummaries:
		return nil
	case UpdateCampaignSummary:
		if m.CampaignID == "" {
			return fmt.Errorf("campaign_id é obrigatório para %s", m.Task)
		}
		return nil
	}
	return fmt.Errorf("tarefa desconhecida: %q", m.Task)
}

type Runner struct {
	updater analyzing.SummaryUpdater
}

func NewRunner(updater analyzing.SummaryUpdater) *Runner {
	return &Runner{updater: updater}
}

// Run executa a tarefa. Erros retornados podem ser reprocessados.
func (r *Runner) Run(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return queue.Permanent(err)
	}

	ctx, _ = log.WithCorrelationIDValue(ctx, msg.CorrelationID)
	logger := log.ForContext(ctx).WithField("task", msg.Task)

	switch msg.Task {
	case UpdateAllCampaignSummaries:
		updated, err := r.updater.UpdateAllCampaignSummaries(ctx)
		if err != nil {
			return err
		}
		logger.Infof("%d campanhas atualizadas", updated)

	case UpdateCampaignSummary:
		ok, err := r.updater.UpdateCampaignSummary(ctx, msg.CampaignID)
		if err != nil {
			return err
		}
		if !ok {
			logger.WithField("campaign_id", msg.CampaignID).Warn("Tarefa ignorada: campanha não encontrada")
		}
	}

	return nil
}

// Handle decodifica a mensagem da fila e executa a tarefa
func (r *Runner) Handle(ctx context.Context, body []byte) error {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return queue.Permanent(fmt.Errorf("mensagem inválida: %w", err))
	}
	return r.Run(ctx, msg)
}
