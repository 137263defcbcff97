// Package entity defines shared response structures for the web layer.
package entity

// Msg is the standard API response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// RateLimited is the 429 response body for the login route. Code is
// machine-readable; RetryAfter is seconds until the window frees up.
type RateLimited struct {
	Success    bool   `json:"success"`
	Code       string `json:"code"`
	Msg        string `json:"msg"`
	RetryAfter int    `json:"retryAfter"`
}
