package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	raw, ok := readBody(w, r)
	if !ok {
		return
	}

	added, err := h.auth.Register(r.Context(), raw)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedUserData{AddedUser: added}))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	raw, ok := readBody(w, r)
	if !ok {
		return
	}

	token, err := h.auth.Login(r.Context(), raw)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AccessTokenData{AccessToken: token}))
}
