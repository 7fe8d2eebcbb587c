package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AccountService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", token.Bearer())
	utils.WriteJSON(w, models.LoginResponse{User: user, Token: token.Bearer()}, http.StatusOK)
}
