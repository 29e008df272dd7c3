package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const (
	modelsTable      = "predictive_models"
	predictionsTable = "predictions"
)

type PredictiveRepository interface {
	SaveModel(ctx context.Context, model *domain.PredictiveModel) error
	GetActiveModel(ctx context.Context, campaignID string) (*domain.PredictiveModel, error)
	SavePredictions(ctx context.Context, predictions []*domain.Prediction) error
	ListPredictions(ctx context.Context, modelID string) ([]*domain.Prediction, error)
}

type predictiveRepository struct {
	conn *postgres.Connection
}

func NewPredictiveRepository(conn *postgres.Connection) PredictiveRepository {
	return &predictiveRepository{
		conn: conn,
	}
}

// SaveModel desativa o modelo anterior da campanha e grava o novo como ativo
func (r *predictiveRepository) SaveModel(ctx context.Context, model *domain.PredictiveModel) error {
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	coefficients, err := json.Marshal(model.Coefficients)
	if err != nil {
		return fmt.Errorf("erro ao serializar coeficientes: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		query, args, err := psql.
			Update(modelsTable).
			Set("is_active", false).
			Where(squirrel.Eq{"campaign_id": model.CampaignID, "is_active": true}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao desativar modelos anteriores: %w", err)
		}

		model.IsActive = true
		query, args, err = psql.
			Insert(modelsTable).
			Columns("id", "user_id", "campaign_id", "model_type", "coefficients", "accuracy", "samples", "origin_date", "is_active", "trained_at").
			Values(model.ID, model.UserID, model.CampaignID, model.ModelType, coefficients, model.Accuracy, model.Samples, formatDate(model.OriginDate), true, model.TrainedAt).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao salvar modelo: %w", err)
		}

		return nil
	})
}

func (r *predictiveRepository) GetActiveModel(ctx context.Context, campaignID string) (*domain.PredictiveModel, error) {
	query, args, err := psql.
		Select("id", "user_id", "campaign_id", "model_type", "coefficients", "accuracy", "samples", "origin_date", "is_active", "trained_at").
		From(modelsTable).
		Where(squirrel.Eq{"campaign_id": campaignID, "is_active": true}).
		OrderBy("trained_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		m            domain.PredictiveModel
		coefficients []byte
	)
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.UserID, &m.CampaignID, &m.ModelType, &coefficients, &m.Accuracy, &m.Samples, &m.OriginDate, &m.IsActive, &m.TrainedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear modelo: %w", err)
	}

	if len(coefficients) > 0 {
		if err := json.Unmarshal(coefficients, &m.Coefficients); err != nil {
			return nil, fmt.Errorf("erro ao deserializar coeficientes: %w", err)
		}
	}

	return &m, nil
}

func (r *predictiveRepository) SavePredictions(ctx context.Context, predictions []*domain.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	builder := psql.
		Insert(predictionsTable).
		Columns("id", "model_id", "campaign_id", "prediction_date", "predicted_impressions", "predicted_clicks", "predicted_conversions", "predicted_spend", "confidence")

	for _, p := range predictions {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		builder = builder.Values(p.ID, p.ModelID, p.CampaignID, formatDate(p.PredictionDate), p.PredictedImpressions, p.PredictedClicks, p.PredictedConversions, p.PredictedSpend, p.Confidence)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (model_id, prediction_date) DO UPDATE SET
			predicted_impressions = EXCLUDED.predicted_impressions,
			predicted_clicks = EXCLUDED.predicted_clicks,
			predicted_conversions = EXCLUDED.predicted_conversions,
			predicted_spend = EXCLUDED.predicted_spend,
			confidence = EXCLUDED.confidence`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar previsões: %w", err)
	}
	return nil
}

func (r *predictiveRepository) ListPredictions(ctx context.Context, modelID string) ([]*domain.Prediction, error) {
	query, args, err := psql.
		Select("id", "model_id", "campaign_id", "prediction_date", "predicted_impressions", "predicted_clicks", "predicted_conversions", "predicted_spend", "confidence", "created_at").
		From(predictionsTable).
		Where(squirrel.Eq{"model_id": modelID}).
		OrderBy("prediction_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Prediction, 0)
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(&p.ID, &p.ModelID, &p.CampaignID, &p.PredictionDate, &p.PredictedImpressions, &p.PredictedClicks, &p.PredictedConversions, &p.PredictedSpend, &p.Confidence, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		result = append(result, &p)
	}

	return result, rows.Err()
}
