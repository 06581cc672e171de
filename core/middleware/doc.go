// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route when server.api_key is set.
//   - rayid: assigns each request a RayID, stores it in locals and echoes it in
//     the response headers for tracing.
package middleware
