package http

import (
	"net/http"

	"hit-reports/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type logHitHandler struct {
	hitService ingestors.HitService
}

func NewLogHitHandler(hitService ingestors.HitService) AppHttpHandler {
	return &logHitHandler{hitService: hitService}
}

// Handle processes POST /hits requests. 202 acknowledges buffering only;
// persistence happens on the next flush.
func (h *logHitHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	_, err := h.hitService.Ingest(r.Context(), r.Body)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusAccepted)
	return nil
}
