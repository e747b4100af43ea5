package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/gend/docs.go`.
//
// @title           gend API
// @version         1.0
// @description     HTTP API for progressive text generation: a short first chunk immediately, the full completion by polling.
//
// @contact.name   gend maintainers
// @contact.url    https://github.com/your-org/gend
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
