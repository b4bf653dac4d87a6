package api

import (
	"github.com/itchan-dev/forum-api/shared/domain"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// UnauthorizedResponse extends the envelope with the fields clients of the old api check on 401.
type UnauthorizedResponse struct {
	Response
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type ThreadDetailData struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedUserData struct {
	AddedUser domain.AddedUser `json:"addedUser"`
}

type AccessTokenData struct {
	AccessToken string `json:"accessToken"`
}
