package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectTechnologyHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newProjectTechnologyHandler(database database.Database) projectTechnologyHandler {
	logger := log.With().Str("handlerName", "projectTechnologyHandler").Logger()

	return projectTechnologyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// getAllLinks lists each linked project with its technology names
// @Summary Get project technologies
// @Description Only projects with at least one technology are listed; names are joined by ", "
// @Tags Project Technologies
// @Produce json
// @Success 200 {array} models.ProjectTechnologySummary
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /project-technologies [get]
func (h projectTechnologyHandler) getAllLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.database.ProjectTechnologyRepo().Summaries(r.Context())
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project technologies", err))
			return
		}

		h.responder.WriteJSON(w, summaries)
	}
}

// linkTechnologies links technologies to a project by name, creating the missing ones
// @Summary Link technologies to project
// @Tags Project Technologies
// @Accept json
// @Produce json
// @Param link body LinkTechnologiesRequest true "Project id and technology names"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /project-technologies [post]
func (h projectTechnologyHandler) linkTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LinkTechnologiesRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.LinkTechnologies(r.Context(), *req.ProjectID, req.Technologies); err != nil {
			h.responder.WriteError(w, r, errs.NewTransactionFailedError("link technologies", err))
			return
		}

		h.logger.Info().
			Uint("projectId", *req.ProjectID).
			Strs("technologies", req.Technologies).
			Msg("technologies linked")
		h.responder.WriteMessage(w, http.StatusCreated, "Technologies linked to project successfully")
	}
}

// replaceTechnologies replaces the whole technology set of a project
// @Summary Replace project technologies
// @Tags Project Technologies
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param technologies body ReplaceTechnologiesRequest true "New technology names"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /project-technologies/{projectId} [put]
func (h projectTechnologyHandler) replaceTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectId")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		var req ReplaceTechnologiesRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.ReplaceTechnologies(r.Context(), projectID, req.Technologies); err != nil {
			h.responder.WriteError(w, r, errs.NewTransactionFailedError("replace technologies", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Project technologies updated successfully")
	}
}

// unlinkTechnology deletes one project/technology link
// @Summary Delete project technology link
// @Tags Project Technologies
// @Accept json
// @Produce json
// @Param link body UnlinkTechnologyRequest true "Project and technology ids"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /project-technologies [delete]
func (h projectTechnologyHandler) unlinkTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnlinkTechnologyRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.ProjectTechnologyRepo().Delete(r.Context(), *req.ProjectID, *req.TechnologyID); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("delete", "project technology", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Project technology link deleted successfully")
	}
}
