// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// listen port, the API key protecting every route, and the graceful shutdown bound.
package server
