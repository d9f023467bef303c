package domain

// Page is the pagination envelope every list endpoint returns. The gateway
// passes it through to the caller unmodified.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}
