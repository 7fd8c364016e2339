package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// acceptedResponse acknowledges a public form submission.
type acceptedResponse struct {
	Message string `json:"message"`
}
