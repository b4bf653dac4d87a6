package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	owner := mw.GetUserIdFromContext(r)
	if owner == "" {
		utils.WriteUnauthorized(w, "Missing authentication")
		return
	}

	raw, ok := readBody(w, r)
	if !ok {
		return
	}

	added, err := h.thread.Add(r.Context(), owner, raw)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadData{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.thread.Detail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadDetailData{Thread: detail}))
}
