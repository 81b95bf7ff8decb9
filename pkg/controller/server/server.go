package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/utils/errutil"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

// Server exposes health and latest push results while the push loop runs
type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type statusResponse struct {
	Results []*model.PushResult `json:"results"`
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		results, err := uc.ListResults(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list push results", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}
		if results == nil {
			results = []*model.PushResult{}
		}

		body, err := json.Marshal(statusResponse{Results: results})
		if err != nil {
			errutil.HandleError(r.Context(), "fail to marshal push results", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusOK, body)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
