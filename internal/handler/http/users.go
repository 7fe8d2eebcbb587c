// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Send()
		writeErrorMessage(w, app.MsgInvalidUserID, http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		log.Debug().Err(err).Send()
		writeErrorMessage(w, app.MsgInvalidUserID, http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.UpdateProfile(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		log.Debug().Err(err).Send()
		writeErrorMessage(w, app.MsgInvalidUserID, http.StatusBadRequest)
		return
	}

	var req models.SetActiveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		if err == nil {
			err = ErrMissingActiveFlag
		}
		log.Debug().Err(err).Msg("invalid activation payload")
		writeErrorMessage(w, app.MsgInvalidActiveFlag, http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}
