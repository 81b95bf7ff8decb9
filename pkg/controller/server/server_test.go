package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/controller/server"
	"github.com/secmon-lab/pushloop/pkg/domain/mock"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/infra"
	"github.com/secmon-lab/pushloop/pkg/usecase"
)

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestStatus(t *testing.T) {
	t.Run("returns latest results", func(t *testing.T) {
		pushedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		mockUC := &mock.UseCaseMock{
			ListResultsFunc: func(ctx context.Context) ([]*model.PushResult, error) {
				return []*model.PushResult{
					{Repository: "alice/a", Success: true, PushedAt: pushedAt},
					{Repository: "alice/b", StatusCode: 403, Category: types.ErrorCategoryForbidden, PushedAt: pushedAt},
				}, nil
			},
		}
		srv := server.New(mockUC)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var resp struct {
			Results []model.PushResult `json:"results"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.Results).Length(2)
		gt.True(t, resp.Results[0].Success)
		gt.V(t, resp.Results[1].Category).Equal(types.ErrorCategoryForbidden)
		gt.A(t, mockUC.ListResultsCalls()).Length(1)
	})

	t.Run("empty results are an empty list", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"results":[]}`)
	})

	t.Run("usecase error returns 500", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListResultsFunc: func(ctx context.Context) ([]*model.PushResult, error) {
				return nil, goerr.New("storage unavailable")
			},
		}
		srv := server.New(mockUC)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
