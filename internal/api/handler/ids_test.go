package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

func TestCampaignRoutes_MalformedIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := postgres.Wrap(db)
	service := campaigning.NewService(
		repository.NewCampaignRepository(conn),
		repository.NewContentRepository(conn),
		repository.NewDailyAnalyticsRepository(conn),
		nil, nil, timezone.New(time.UTC),
	)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/v1/campaigns/not-a-uuid", nil),
		httptest.NewRequest(http.MethodDelete, "/v1/campaigns/not-a-uuid", nil),
		httptest.NewRequest(http.MethodGet, "/v1/campaigns/not-a-uuid/comments", nil),
		httptest.NewRequest(http.MethodGet, "/v1/campaigns/not-a-uuid/analytics", nil),
	} {
		rec := serve(t, Campaigns(service), adminClaims, req)

		require.Equal(t, http.StatusNotFound, rec.Code, req.Method+" "+req.URL.Path)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
