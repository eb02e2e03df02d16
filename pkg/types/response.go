package types

type SuccessEnvelope struct {
	Data   any     `json:"data"`
	Notice *Notice `json:"notice,omitempty"`
}

// Notice is a transient, user-facing message attached to a successful response.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
