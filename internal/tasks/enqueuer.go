package tasks

import (
	"context"
	"fmt"

	"github.com/vfg2006/advision-api/pkg/log"
)

// Publisher publica o corpo de uma mensagem na fila de tarefas
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// Enqueuer publica tarefas na fila ou, sem fila configurada, executa no próprio processo
type Enqueuer struct {
	publisher Publisher
	runner    *Runner
}

func NewEnqueuer(publisher Publisher, runner *Runner) *Enqueuer {
	return &Enqueuer{
		publisher: publisher,
		runner:    runner,
	}
}

func (e *Enqueuer) Enqueue(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if msg.CorrelationID == "" {
		msg.CorrelationID = log.GetCorrelationID(ctx)
	}
	logger := log.ForContext(ctx).WithField("task", msg.Task)

	if e.publisher == nil {
		logger.Debug("Fila não configurada, executando tarefa localmente")
		return e.runner.Run(ctx, msg)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("erro ao serializar tarefa: %w", err)
	}

	if err := e.publisher.Publish(ctx, body); err != nil {
		return fmt.Errorf("erro ao publicar tarefa %s: %w", msg.Task, err)
	}

	logger.WithField("campaign_id", msg.CampaignID).Debug("Tarefa publicada")

	return nil
}

func (e *Enqueuer) EnqueueCampaignSummary(ctx context.Context, campaignID string) error {
	return e.Enqueue(ctx, Message{Task: UpdateCampaignSummary, CampaignID: campaignID})
}

func (e *Enqueuer) EnqueueAllCampaignSummaries(ctx context.Context) error {
	return e.Enqueue(ctx, Message{Task: UpdateAllCampaignSummaries})
}
