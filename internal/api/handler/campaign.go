package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

const maxUploadSize = 10 << 20

type CommentRequest struct {
	Message string `json:"message"`
}

type ImportAnalyticsRequest struct {
	Rows []domain.DailyAnalyticsInput `json:"rows"`
}

type ImportAnalyticsResponse struct {
	Imported int `json:"imported"`
}

func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		activeOnly := false
		if raw := r.URL.Query().Get("active"); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active inválido", nil)
				return
			}
			activeOnly = value
		}

		campaigns, err := service.List(r.Context(), userClaims, activeOnly)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req domain.CampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Create(r.Context(), userClaims, &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		campaign, err := service.Get(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func UpdateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req domain.CampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Update(r.Context(), userClaims, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims, param(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListAds(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		ads, err := service.ListAds(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar anúncios")
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

func CreateAd(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var ad domain.AdContent
		if !decodeBody(w, r, &ad) {
			return
		}

		created, err := service.CreateAd(r.Context(), userClaims, param(r, "id"), &ad)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar anúncio")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListComments(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		comments, err := service.ListComments(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar comentários")
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

func CreateComment(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req CommentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		comment, err := service.CreateComment(r.Context(), userClaims, param(r, "id"), req.Message)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar comentário")
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

func ListImages(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		images, err := service.ListImages(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar imagens")
			return
		}

		writeJSON(w, http.StatusOK, images)
	}
}

// UploadImage recebe o arquivo no campo "image" e o prompt opcional no campo "prompt"
func UploadImage(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo maior que o permitido", "limite de 10MB")
				return
			}
			logrus.WithError(err).Warn("Upload de imagem inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo image é obrigatório", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logrus.WithError(err).Error("Erro ao ler arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo enviado", nil)
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}

		image, err := service.UploadImage(r.Context(), userClaims, param(r, "id"), campaigning.ImageUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Prompt:      r.FormValue("prompt"),
			Data:        data,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao enviar imagem")
			return
		}

		writeJSON(w, http.StatusCreated, image)
	}
}

// ImportAnalytics grava as métricas diárias e agenda a atualização do resumo
func ImportAnalytics(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req ImportAnalyticsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if len(req.Rows) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma métrica informada", nil)
			return
		}

		imported, err := service.ImportAnalytics(r.Context(), userClaims, param(r, "id"), req.Rows)
		if err != nil {
			writeServiceError(w, err, "Erro ao importar métricas")
			return
		}

		writeJSON(w, http.StatusAccepted, ImportAnalyticsResponse{Imported: imported})
	}
}

// ListAnalytics aceita start_date e end_date no formato AAAA-MM-DD
func ListAnalytics(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var filters domain.AnalyticsFilters
		for name, target := range map[string]**time.Time{
			"start_date": &filters.StartDate,
			"end_date":   &filters.EndDate,
		} {
			raw := r.URL.Query().Get(name)
			if raw == "" {
				continue
			}

			date, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida em "+name, "formato esperado: AAAA-MM-DD")
				return
			}
			*target = &date
		}

		if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve ser posterior a start_date", nil)
			return
		}

		rows, err := service.ListAnalytics(r.Context(), userClaims, param(r, "id"), filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar métricas")
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}
