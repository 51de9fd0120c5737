// Package client implements the HTTP client for the authprobe CLI to
// communicate with the authentication API server, with methods for signup,
// email verification, login, token refresh, password reset, and the
// protected profile route.
package client
