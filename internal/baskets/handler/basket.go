package handler

import (
	"encoding/json"
	"net/http"

	authservice "skyfare/internal/auth/service"
	"skyfare/internal/baskets/service"
	httputil "skyfare/pkg/http"
	"skyfare/pkg/logger"
	"skyfare/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type uploadRequest struct {
	Flights []model.BasketSelection `json:"flights"`
}

type BasketHandler struct {
	service service.BasketService
	auth    authservice.AuthService
	log     *logger.Logger
}

func NewBasketHandler(service service.BasketService, auth authservice.AuthService, log *logger.Logger) *BasketHandler {
	return &BasketHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *BasketHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := h.auth.ResolveIdentity(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	basket, err := h.service.GetOrCreate(r.Context(), userID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, basket); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BasketHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := h.auth.ResolveIdentity(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Upload", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	basket, err := h.service.Upload(r.Context(), userID, req.Flights)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, basket); err != nil {
		h.log.Error("failed to write success response", "handler", "Upload", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BasketHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/basket", h.Get)
	router.POST("/api/v1/basket", h.Upload)
}
