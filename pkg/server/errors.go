package server

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("server: failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("server: failed to shutdown HTTP server gracefully")
	// ErrNoCatalogs is returned by Router when no catalog is provided.
	ErrNoCatalogs = errors.New("server: at least one catalog is required")
)

// apiError is an error rendered as {"error": {"code", "message"}}.
type apiError struct {
	status  int
	code    string
	message string
}

func (e apiError) Error() string { return e.code + ": " + e.message }

func badRequest(code, message string) apiError {
	return apiError{status: 400, code: code, message: message}
}

func notFound(code, message string) apiError {
	return apiError{status: 404, code: code, message: message}
}
