// Package http implements the HTTP transport layer of the service.
// It provides the chi router, middleware, and request/response plumbing for
// the REST API. API-key checking, token authentication, tracing, logging, and
// client-IP capture are handled here before requests reach the service layer;
// business outcomes are wrapped in the uniform response envelope.
package http
