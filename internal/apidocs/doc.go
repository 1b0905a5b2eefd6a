// Package apidocs registers the Swagger document served by the HTTP API.
// The document is only compiled with -tags=swagger.
package apidocs
