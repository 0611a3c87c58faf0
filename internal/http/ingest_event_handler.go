package http

import (
	"net/http"

	"traffic-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AcceptedResponse acknowledges an admitted event.
type AcceptedResponse struct {
	Message string `json:"message"`
}

type ingestEventHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests. The caller's User-Agent header,
// not the event's own userAgent field, feeds the UA blacklist check.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	_, err := h.ingestionService.IngestEvent(r.Context(), r.UserAgent(), r.Body)
	if err != nil {
		return err
	}

	writeJSONResponse(w, http.StatusOK, AcceptedResponse{Message: "Request accepted"})
	return nil
}
