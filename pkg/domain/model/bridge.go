package model

// AuthRequest is the body of an authenticate call over HTTP
type AuthRequest struct {
	Token string `json:"token"`
}

// AuthResponse reports whether the bot session became ready
type AuthResponse struct {
	OK bool `json:"ok"`
}

// ImageResponse carries the picked file; Path is null when the dialog was cancelled
type ImageResponse struct {
	Path *string `json:"path"`
}

// ErrorResponse is the body of every non-2xx bridge response
type ErrorResponse struct {
	Error string `json:"error"`
}
