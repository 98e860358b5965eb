// Package api contains the HTTP handlers, request models, and error
// mapping for the public REST surface. Handlers decode and validate
// requests, delegate to the service layer, and translate service errors
// into sanitized JSON responses.
package api
