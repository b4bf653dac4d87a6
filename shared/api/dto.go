package api

// Request DTOs, decoded and checked by shared/validation

type AddThreadRequest struct {
	Title string `json:"title" validate:"required,nonul"`
	Body  string `json:"body" validate:"required,nonul"`
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required,nonul"`
}

// Password max is bcrypt's input limit.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=50,username"`
	Password string `json:"password" validate:"required,nonul,max=72"`
	Fullname string `json:"fullname" validate:"required,nonul"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,nonul"`
	Password string `json:"password" validate:"required,nonul"`
}
