package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newProjectHandler(database database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// getAllProjects retrieves all projects with their technologies
// @Summary Get all projects
// @Description Retrieves all projects; technologies is the comma-joined, name-sorted list of linked technologies
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.database.ProjectRepo().FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Returns an array holding the project, or an empty array when no project has that id
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} models.Project "Zero or one project"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "id")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		projects, err := h.database.ProjectRepo().FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProjectsByTechnology lists the projects linked to a technology name
// @Summary Get projects by technology
// @Tags Projects
// @Produce json
// @Param name path string true "Technology name"
// @Success 200 {array} models.Project "Projects using the technology"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects/technology/{name} [get]
func (h projectHandler) getProjectsByTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := pathName(r, "name")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		projects, err := h.database.ProjectRepo().FindByTechnologyName(r.Context(), name)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "projects by technology", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body ProjectRequest true "Project data"
// @Success 201 {object} CreateProjectResponse "Created project id"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		project := projectFromRequest(req)
		if err := h.database.ProjectRepo().Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Uint("projectId", project.ID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, CreateProjectResponse{
			Message:   "Project created successfully",
			ProjectID: project.ID,
		})
	}
}

// updateProject overwrites the five mutable fields of a project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body ProjectRequest true "Updated project data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects/{id} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "id")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		var req ProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		project := projectFromRequest(req)
		if err := h.database.ProjectRepo().Update(r.Context(), projectID, &project); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Project updated successfully")
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Link rows are removed too only when DELETE_CASCADE is enabled
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "id")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Project deleted successfully")
	}
}

func projectFromRequest(req ProjectRequest) models.Project {
	return models.Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Github:      req.Github,
		Demo:        req.Demo,
	}
}
