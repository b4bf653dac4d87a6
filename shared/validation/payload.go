package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

var usernamePattern = regexp.MustCompile(`^[\w]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	// postgres text columns cannot hold NUL
	if err := v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	}); err != nil {
		panic(err)
	}
	return v
}

// Messages are the client-facing texts for the two ways a payload can be rejected.
type Messages struct {
	Missing string // required property absent, null or empty
	Type    string // non string json type, NUL inside a string, or body is not json
}

var (
	ThreadMessages = Messages{
		Missing: "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
		Type:    "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	}
	CommentMessages = Messages{
		Missing: "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
		Type:    "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	}
	UserMessages = Messages{
		Missing: "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
		Type:    "tidak dapat membuat user baru karena tipe data tidak sesuai",
	}
	LoginMessages = Messages{
		Missing: "harus mengirimkan username dan password",
		Type:    "username dan password harus string",
	}
)

const (
	msgUsernameTooLong   = "tidak dapat membuat user baru karena karakter username melebihi batas limit"
	msgUsernameForbidden = "tidak dapat membuat user baru karena username mengandung karakter terlarang"
)

// Decode parses raw into T and runs its validate tags.
// Every failure is a validation error carrying one of msgs.
func Decode[T any](raw []byte, msgs Messages) (T, error) {
	var body T
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, internal_errors.Validation(msgs.Missing)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return body, internal_errors.Validation(msgs.Type)
	}
	if err := validate.Struct(body); err != nil {
		return body, internal_errors.Validation(messageFor(err, msgs))
	}
	return body, nil
}

// messageFor picks Missing over Type when both kinds of failure are present.
func messageFor(err error, msgs Messages) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return msgs.Missing
	}
	if _, ok := failedOn(fieldErrs, "required"); ok {
		return msgs.Missing
	}
	if _, ok := failedOn(fieldErrs, "nonul"); ok {
		return msgs.Type
	}
	return msgs.Missing
}

func failedOn(fieldErrs validator.ValidationErrors, tag string) (validator.FieldError, bool) {
	for _, fe := range fieldErrs {
		if fe.Tag() == tag {
			return fe, true
		}
	}
	return nil, false
}

func ThreadPayload(raw []byte) (api.AddThreadRequest, error) {
	return Decode[api.AddThreadRequest](raw, ThreadMessages)
}

func CommentPayload(raw []byte) (api.AddCommentRequest, error) {
	return Decode[api.AddCommentRequest](raw, CommentMessages)
}

func LoginPayload(raw []byte) (api.LoginRequest, error) {
	return Decode[api.LoginRequest](raw, LoginMessages)
}

// RegisterPayload reports username length and charset problems with their own messages.
func RegisterPayload(raw []byte) (api.RegisterUserRequest, error) {
	var body api.RegisterUserRequest
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, internal_errors.Validation(UserMessages.Missing)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return body, internal_errors.Validation(UserMessages.Type)
	}
	err := validate.Struct(body)
	if err == nil {
		return body, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		if _, ok := failedOn(fieldErrs, "required"); ok {
			return body, internal_errors.Validation(UserMessages.Missing)
		}
		if _, ok := failedOn(fieldErrs, "nonul"); ok {
			return body, internal_errors.Validation(UserMessages.Type)
		}
		if fe, ok := failedOn(fieldErrs, "max"); ok {
			if fe.Field() == "Password" {
				return body, internal_errors.Validation(domain.MsgPasswordTooLong)
			}
			return body, internal_errors.Validation(msgUsernameTooLong)
		}
		if _, ok := failedOn(fieldErrs, "username"); ok {
			return body, internal_errors.Validation(msgUsernameForbidden)
		}
	}
	return body, internal_errors.Validation(UserMessages.Missing)
}
