// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal analysis services, translating HTTP concerns to
// background task submissions and stored results.
package api
