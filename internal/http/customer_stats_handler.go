package http

import (
	"fmt"
	"net/http"
	"strconv"

	"traffic-analytics/internal/aggregators"
	"traffic-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
)

const codeInvalidCustomerIDParam = "HTTP_1000"

type customerStatsHandler struct {
	statsService aggregators.StatsService
}

func NewCustomerStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &customerStatsHandler{
		statsService: statsService,
	}
}

// Handle processes GET /stats/{customerID}/{day} requests.
func (h *customerStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	rawCustomerID := chi.URLParam(r, "customerID")
	customerID, err := strconv.ParseInt(rawCustomerID, 10, 64)
	if err != nil {
		return svcerrors.NewInvalidArgumentError(codeInvalidCustomerIDParam,
			fmt.Sprintf("customerID must be an integer, got %q", rawCustomerID), err)
	}

	stats, err := h.statsService.DailyStats(r.Context(), customerID, chi.URLParam(r, "day"))
	if err != nil {
		return err
	}

	writeJSONResponse(w, http.StatusOK, stats)
	return nil
}
