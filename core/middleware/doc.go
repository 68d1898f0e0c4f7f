// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the diff endpoints.
//   - rayid: a unique request id (RayID) for every incoming request, stored in
//     the context and echoed in the X-Ray-ID response header.
//
// Register rayid first so that every log line of a request carries its id.
package middleware
