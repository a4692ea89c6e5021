package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"skyfare/internal/search/service"
	apperrors "skyfare/pkg/errors"
	httputil "skyfare/pkg/http"
	"skyfare/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type SearchHandler struct {
	service service.SearchService
	log     *logger.Logger
}

func NewSearchHandler(service service.SearchService, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	depDate, err := time.Parse(time.RFC3339, query.Get("dep_date"))
	if err != nil {
		// Accept a bare date too; most clients send one.
		depDate, err = time.Parse("2006-01-02", query.Get("dep_date"))
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("dep_date must be RFC3339 or YYYY-MM-DD")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
			}
			return
		}
	}

	counts := map[string]int{"adult": 1, "child": 0, "infant": 0}
	for name := range counts {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, raw))); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		counts[name] = n
	}

	flights, err := h.service.Search(r.Context(), service.SearchQuery{
		DepCode: query.Get("dep_code"),
		ArrCode: query.Get("arr_code"),
		DepDate: depDate,
		Adult:   counts["adult"],
		Child:   counts["child"],
		Infant:  counts["infant"],
	})
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, flights); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) Offers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	flights, err := h.service.Offers(r.Context(), r.URL.Query().Get("dep_code"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Offers", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, flights); err != nil {
		h.log.Error("failed to write success response", "handler", "Offers", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) Airports(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	airports, err := h.service.Airports(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Airports", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, airports); err != nil {
		h.log.Error("failed to write success response", "handler", "Airports", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) SeatMap(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	seatMap, err := h.service.SeatMap(r.Context(), ps.ByName("plane_type"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SeatMap", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, seatMap); err != nil {
		h.log.Error("failed to write success response", "handler", "SeatMap", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) OccupiedSeats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	seats, err := h.service.OccupiedSeats(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "OccupiedSeats", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, seats); err != nil {
		h.log.Error("failed to write success response", "handler", "OccupiedSeats", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/flights/search", h.Search)
	router.GET("/api/v1/flights/offers", h.Offers)
	router.GET("/api/v1/flights/id/:id/seats", h.OccupiedSeats)
	router.GET("/api/v1/airports", h.Airports)
	router.GET("/api/v1/seatmaps/:plane_type", h.SeatMap)
}
