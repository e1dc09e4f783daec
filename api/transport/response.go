package transport

// Envelope is the JSON wrapper every endpoint returns. A success carries the
// payload under data; a failure carries a stable machine code from the domain
// error taxonomy plus a user-facing message, never store internals.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// OK wraps a successful payload.
func OK(data interface{}) Envelope {
	return Envelope{Status: statusSuccess, Data: data}
}

// Fail builds an error envelope.
func Fail(code, message string) Envelope {
	return Envelope{Status: statusError, Code: code, Message: message}
}

// FailWithData reports a failure that still carries a payload; the health
// endpoint uses it to return per-dependency status alongside the error.
func FailWithData(code, message string, data interface{}) Envelope {
	e := Fail(code, message)
	e.Data = data
	return e
}
