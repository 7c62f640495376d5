package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskr-api/internal/api/middleware"
)

// Route is one entry of the route table. Public routes skip the auth guard;
// every other route requires a valid bearer token.
type Route struct {
	Method  string
	Pattern string
	Public  bool
	Handler http.HandlerFunc
}

// Routes returns the API route table.
func Routes(authHandler *AuthHandler, taskHandler *TaskHandler) []Route {
	return []Route{
		{Method: http.MethodPost, Pattern: "/api/auth/register", Public: true, Handler: authHandler.Register},
		{Method: http.MethodPost, Pattern: "/api/auth/login", Public: true, Handler: authHandler.Login},
		{Method: http.MethodGet, Pattern: "/api/auth/me", Handler: authHandler.Me},

		{Method: http.MethodPost, Pattern: "/api/tasks", Handler: taskHandler.Create},
		{Method: http.MethodGet, Pattern: "/api/tasks", Handler: taskHandler.List},
		{Method: http.MethodGet, Pattern: "/api/tasks/{id}", Handler: taskHandler.Get},
		{Method: http.MethodPatch, Pattern: "/api/tasks/{id}", Handler: taskHandler.Update},
		{Method: http.MethodDelete, Pattern: "/api/tasks/{id}", Handler: taskHandler.Delete},
	}
}

// Mount registers each route on r behind guard.Guard(route.Public, ...).
func Mount(r chi.Router, guard *middleware.AuthMiddleware, routes []Route) {
	for _, rt := range routes {
		r.Method(rt.Method, rt.Pattern, guard.Guard(rt.Public, rt.Handler))
	}
}
