package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	service.EXPECT().List(gomock.Any(), viewerClaims, true).Return([]*domain.Campaign{
		{ID: "c1", Title: "Verão", Platform: domain.PlatformInstagram, IsActive: true},
	}, nil)

	rec := serve(t, Campaigns(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/campaigns?active=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var campaigns []domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c1", campaigns[0].ID)
}

func TestListCampaigns_InvalidActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	rec := serve(t, Campaigns(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/campaigns?active=talvez", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCreateCampaign(t *testing.T) {
	t.Run("criada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		service.EXPECT().
			Create(gomock.Any(), editorClaims, gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error) {
				require.NotNil(t, req.Title)
				assert.Equal(t, "Lançamento", *req.Title)
				return &domain.Campaign{ID: "c2", Title: *req.Title, UserID: editorClaims.UserID}, nil
			})

		req := jsonRequest(t, http.MethodPost, "/v1/campaigns", map[string]any{
			"title":    "Lançamento",
			"platform": "facebook",
			"budget":   "1500.00",
		})
		rec := serve(t, Campaigns(service), editorClaims, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"c2"`)
	})

	t.Run("viewer não pode criar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		req := jsonRequest(t, http.MethodPost, "/v1/campaigns", map[string]any{"title": "X"})
		rec := serve(t, Campaigns(service), viewerClaims, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		rec := serve(t, Campaigns(service), editorClaims, jsonRequest(t, http.MethodPost, "/v1/campaigns", "{"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("validação do serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		service.EXPECT().Create(gomock.Any(), editorClaims, gomock.Any()).
			Return(nil, campaigning.NewCampaignError(campaigning.ErrInvalidCampaign, apiErrors.ErrMissingRequiredData, "title é obrigatório"))

		rec := serve(t, Campaigns(service), editorClaims, jsonRequest(t, http.MethodPost, "/v1/campaigns", map[string]any{}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
		assert.Equal(t, campaigning.ErrInvalidCampaign.Error(), apiErr.Message)
		assert.Equal(t, "title é obrigatório", apiErr.Details)
	})
}

func TestGetCampaign_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "não encontrada",
			err:        campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "c9", ""),
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
			wantMsg:    campaigning.ErrCampaignNotFound.Error(),
		},
		{
			name:       "erro de banco não vaza detalhes",
			err:        campaigning.NewCampaignError(campaigning.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "pq: conexão recusada"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
			wantMsg:    "Erro ao buscar campanha",
		},
		{
			name:       "erro desconhecido",
			err:        errors.New("inesperado"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
			wantMsg:    "Erro ao buscar campanha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCampaignService(ctrl)

			service.EXPECT().Get(gomock.Any(), viewerClaims, "c9").Return(nil, tt.err)

			rec := serve(t, Campaigns(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c9", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Nil(t, apiErr.Details)
			}
		})
	}
}

func TestDeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	service.EXPECT().Delete(gomock.Any(), editorClaims, "c1").Return(nil)

	rec := serve(t, Campaigns(service), editorClaims, httptest.NewRequest(http.MethodDelete, "/v1/campaigns/c1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateComment_ViewerAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	service.EXPECT().CreateComment(gomock.Any(), viewerClaims, "c1", "Ótimo resultado").
		Return(&domain.Comment{ID: "m1", CampaignID: "c1", UserID: viewerClaims.UserID, Message: "Ótimo resultado"}, nil)

	req := jsonRequest(t, http.MethodPost, "/v1/campaigns/c1/comments", CommentRequest{Message: "Ótimo resultado"})
	rec := serve(t, Campaigns(service), viewerClaims, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	newUpload := func(t *testing.T, withFile bool) *http.Request {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		if withFile {
			part, err := writer.CreateFormFile("image", "banner.png")
			require.NoError(t, err)
			_, err = part.Write(png)
			require.NoError(t, err)
		}
		require.NoError(t, writer.WriteField("prompt", "praia ao pôr do sol"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns/c1/images", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	t.Run("enviada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		service.EXPECT().UploadImage(gomock.Any(), editorClaims, "c1", gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, _ string, upload campaigning.ImageUpload) (*domain.ImageAsset, error) {
				assert.Equal(t, "banner.png", upload.Filename)
				assert.Equal(t, "image/png", upload.ContentType)
				assert.Equal(t, "praia ao pôr do sol", upload.Prompt)
				assert.Equal(t, png, upload.Data)
				return &domain.ImageAsset{ID: "i1", CampaignID: "c1"}, nil
			})

		rec := serve(t, Campaigns(service), editorClaims, newUpload(t, true))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("sem arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		rec := serve(t, Campaigns(service), editorClaims, newUpload(t, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})
}

func TestImportAnalytics(t *testing.T) {
	t.Run("aceita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		service.EXPECT().ImportAnalytics(gomock.Any(), editorClaims, "c1", gomock.Len(2)).Return(2, nil)

		req := jsonRequest(t, http.MethodPost, "/v1/campaigns/c1/analytics", map[string]any{
			"rows": []map[string]any{
				{"date": "2026-10-01", "impressions": 1000, "clicks": 30},
				{"date": "2026-10-02", "impressions": 1200, "clicks": 42},
			},
		})
		rec := serve(t, Campaigns(service), editorClaims, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"imported":2}`, rec.Body.String())
	})

	t.Run("sem linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		req := jsonRequest(t, http.MethodPost, "/v1/campaigns/c1/analytics", map[string]any{"rows": []any{}})
		rec := serve(t, Campaigns(service), editorClaims, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})
}

func TestListAnalytics_DateFilters(t *testing.T) {
	t.Run("intervalo válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		service.EXPECT().ListAnalytics(gomock.Any(), viewerClaims, "c1", gomock.Any()).
			DoAndReturn(func(_ any, _ *domain.Claims, _ string, filters domain.AnalyticsFilters) ([]*domain.DailyAnalytics, error) {
				require.NotNil(t, filters.StartDate)
				require.NotNil(t, filters.EndDate)
				assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
				assert.Equal(t, time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC), *filters.EndDate)
				return []*domain.DailyAnalytics{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/analytics?start_date=2026-10-01&end_date=2026-10-07", nil)
		rec := serve(t, Campaigns(service), viewerClaims, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fim antes do início", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/analytics?start_date=2026-10-07&end_date=2026-10-01", nil)
		rec := serve(t, Campaigns(service), viewerClaims, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("data mal formatada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCampaignService(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/analytics?start_date=01/10/2026", nil)
		rec := serve(t, Campaigns(service), viewerClaims, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
