// Package common contains constants and small helpers shared by the
// chapterdesk client packages.
package common

// HTTP header names and the auth scheme expected by the chapter API.
const (
	AuthorizationHeader = "Authorization"
	TokenScheme         = "Token"
	RequestIDHeader     = "X-Request-ID"
)
