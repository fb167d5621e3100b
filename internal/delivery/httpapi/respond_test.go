package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/mocks"
	"github.com/atelie-design/pedido-service/internal/usecase/tracking"
	"github.com/gorilla/mux"
)

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"pedido not found", domain.ErrPedidoNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrDeliverableNotFound), http.StatusNotFound},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict},
		{"duplicate", domain.ErrAlreadyExists, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusUnprocessableEntity},
		{"inconsistent splits", domain.ErrInconsistente, http.StatusUnprocessableEntity},
		{"unknown error hides details", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			var body errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if tc.want == http.StatusInternalServerError && body.Error != "internal error" {
				t.Fatalf("internal error leaked: %q", body.Error)
			}
		})
	}
}

func TestTrackingEndpoint(t *testing.T) {
	pedidoRepo := mocks.NewMemPedidoRepo()
	activityRepo := mocks.NewMemActivityRepo()
	deliverableRepo := mocks.NewMemDeliverableRepo()
	_ = pedidoRepo.CreatePedido(context.Background(), &domain.Pedido{
		ID:           "ped-1",
		Protocolo:    "PED-HTTP1234",
		Nome:         "Rafaela",
		Email:        "rafaela@example.com",
		Status:       domain.StatusEmConfeccao,
		DataBriefing: time.Now(),
	})

	uc := tracking.NewDefaultTrackingUsecase(pedidoRepo, activityRepo, deliverableRepo, nil)
	handler := NewTrackingHandler(uc)
	router := mux.NewRouter()
	router.HandleFunc("/tracking/{protocolo}", handler.GetTracking).Methods("GET")

	t.Run("known protocolo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracking/PED-HTTP1234", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		var body struct {
			Pedido struct {
				Protocolo string `json:"protocolo"`
				Status    string `json:"status"`
			} `json:"pedido"`
			Progress struct {
				Step int `json:"step"`
			} `json:"progress"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body.Pedido.Protocolo != "PED-HTTP1234" || body.Pedido.Status != "em_confeccao" {
			t.Fatalf("body = %+v", body)
		}
		if body.Progress.Step != 4 {
			t.Fatalf("step = %d", body.Progress.Step)
		}
	})

	t.Run("unknown protocolo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracking/PED-MISSING1", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}
