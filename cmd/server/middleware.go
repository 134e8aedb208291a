package main

import (
	"github.com/JaimeStill/mirofish/pkg/middleware"
)

// buildMiddleware creates the stack applied ahead of module dispatch.
// Canonical path redirects run first so modules only see trimmed paths.
func buildMiddleware() middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.RequestID())
	return middlewareSys
}
