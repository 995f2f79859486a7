// Package client is the HTTP client for the testdash JSON API.
//
// Client wraps a resty client bound to the server base URL. After Login or
// Register the session token is kept and sent as a bearer token on every
// protected call. Non-2xx responses become *APIError values carrying the
// server's message; 401 responses also match ErrUnauthorized and transport
// failures match ErrUnavailable (use errors.Is).
package client
