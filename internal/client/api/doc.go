// Package api is the HTTP client for the chapter REST API.
//
// # Overview
//
// A single Client is shared by every command. Each request:
//   - resolves its path against the configured base URL (default
//     http://localhost:8000/api);
//   - carries "Authorization: Token <token>" whenever the TokenSource holds
//     a token, and an X-Request-ID used to correlate log lines;
//   - waits on the optional rate limiter and is bounded by the configured
//     timeout.
//
// Resource helpers (Login, ListStudents, CreateMeeting, ...) wrap Do and
// Download with the endpoint paths and payload types.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Responses with status >= 400 become
// *Error, which unwraps to ErrUnauthorized for 401/403 and ErrNotFound for
// 404 so callers can match with errors.Is. Error.Message extracts a readable
// message from the backend's body; FlattenErrors turns nested serializer
// errors into "path.to.field: message" lines. Nothing is retried.
package api
