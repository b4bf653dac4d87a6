package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itchan-dev/forum-api/shared/api"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
)

// InternalErrorMessage is the only detail a client sees for unexpected failures.
const InternalErrorMessage = "terjadi kegagalan pada server kami"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","message":"` + InternalErrorMessage + `"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(payload, '\n'))
}

// WriteErrorAndStatusCode translates err into the response envelope.
// Errors without a status code are logged and reported as 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if !errors.As(err, &e) || e.StatusCode >= http.StatusInternalServerError {
		logger.Log.Error("unexpected error", "error", err)
		WriteJSON(w, http.StatusInternalServerError, api.Response{Status: api.StatusError, Message: InternalErrorMessage})
		return
	}
	if e.StatusCode == http.StatusUnauthorized {
		WriteUnauthorized(w, e.Message)
		return
	}
	WriteJSON(w, e.StatusCode, api.Response{Status: api.StatusFail, Message: e.Message})
}

func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, api.UnauthorizedResponse{
		Response:   api.Response{Status: api.StatusFail, Message: message},
		StatusCode: http.StatusUnauthorized,
		Error:      "Unauthorized",
	})
}
