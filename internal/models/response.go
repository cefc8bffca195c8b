package models

// Pagination is the paging metadata attached to list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Envelope is the uniform response wrapper every endpoint returns.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    []string    `json:"details,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKWithMessage wraps data plus a human-readable confirmation.
func OKWithMessage(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// OKPage wraps a result page together with its pagination metadata.
func OKPage(data interface{}, p Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: &p}
}

// Fail wraps an error string, with optional per-field details.
func Fail(errMsg string, details ...string) Envelope {
	return Envelope{Success: false, Error: errMsg, Details: details}
}
