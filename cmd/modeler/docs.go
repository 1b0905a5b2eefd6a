package main

// General API documentation for swaggo. The document is registered by
// internal/apidocs when built with -tags=swagger.
//
// @title           modeler API
// @version         1.0
// @description     HTTP API for planning SageMaker inference deployments.
//
// @contact.name   modeler maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
