package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses that are not registration field errors.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest deliberately carries no validate tags: the registration
// pipeline owns all field rules so violations come back per field, not as a
// single flattened message.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// registerFailureResponse is the 500 envelope for unexpected storage errors
// during registration.
type registerFailureResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}
