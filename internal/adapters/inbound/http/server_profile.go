package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/usecases"
	"go.uber.org/zap"
)

func (api SmartTasksServer) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := api.GetProfileUseCase.Query(ctx, IdentityFromContext(ctx))
	if err != nil {
		api.Logger.Error("Error getting profile", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, toProfile(profile))
}

func (api SmartTasksServer) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req gen.UpdateProfileJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	ctx := r.Context()
	profile, err := api.UpdateProfileUseCase.Execute(ctx, IdentityFromContext(ctx), usecases.UpdateProfileParams{
		FullName:  req.FullName,
		AvatarURL: req.AvatarUrl,
	})
	if err != nil {
		api.Logger.Error("Error updating profile", zap.Error(err))
		respondError(w, toError(err, internalErrorMessage))
		return
	}

	respondJSON(w, http.StatusOK, toProfile(profile))
}
