package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPortfolioRoutes registers the project, technology and link endpoints
func setupPortfolioRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/technology/{name}", handlers.projectHandler.getProjectsByTechnology())
		r.Get("/projects/{id}", handlers.projectHandler.getProject())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{id}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{id}", handlers.projectHandler.deleteProject())

		// Technology Handler endpoints
		r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
		r.Post("/technologies", handlers.technologyHandler.createTechnology())
		r.Put("/technologies/{id}", handlers.technologyHandler.updateTechnology())
		r.Delete("/technologies/{id}", handlers.technologyHandler.deleteTechnology())

		// Project Technology Handler endpoints
		r.Get("/project-technologies", handlers.projectTechnologyHandler.getAllLinks())
		r.Post("/project-technologies", handlers.projectTechnologyHandler.linkTechnologies())
		r.Put("/project-technologies/{projectId}", handlers.projectTechnologyHandler.replaceTechnologies())
		r.Delete("/project-technologies", handlers.projectTechnologyHandler.unlinkTechnology())
	})
}

// setupSystemRoutes registers health and metrics, which are not request-logged
func setupSystemRoutes(r chi.Router, handlers *routeHandlers, metrics *httpMetrics) {
	r.Get("/health", handlers.systemHandler.health())
	r.Method("GET", "/metrics", metrics.handler())
}
