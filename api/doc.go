// Package api exposes the lead discovery service over HTTP.
//
// Routes: POST /api/leads/search runs the full pipeline, POST
// /api/search/similar runs a raw similarity search, GET /health reports
// liveness. Every request gets a UUID request ID and a structured log
// line.
package api
