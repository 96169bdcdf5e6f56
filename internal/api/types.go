package api

// Envelope is the wrapper around every response payload. Code zero signals
// success; any other value is an application-level failure even under HTTP 200.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Paginated is the standard page shape for list endpoints. Total is the full
// matching count, independent of the current page.
type Paginated[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// Query holds query parameters. Nil and empty-string values are omitted from
// the constructed URL; everything else is stringified verbatim.
type Query map[string]any
