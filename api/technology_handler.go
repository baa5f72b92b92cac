package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type technologyHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newTechnologyHandler(database database.Database) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// getAllTechnologies lists every technology ordered by id
// @Summary Get all technologies
// @Tags Technologies
// @Produce json
// @Success 200 {array} models.Technology
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /technologies [get]
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.database.TechnologyRepo().FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "technologies", err))
			return
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// createTechnology inserts a single technology
// @Summary Create technology
// @Tags Technologies
// @Accept json
// @Produce json
// @Param technology body TechnologyRequest true "Technology name"
// @Success 201 {object} CreateTechnologyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /technologies [post]
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TechnologyRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		technology := models.Technology{Name: req.Name}
		if err := h.database.TechnologyRepo().Add(r.Context(), &technology); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("create", "technology", err))
			return
		}

		h.logger.Info().Uint("technologyId", technology.ID).Str("name", technology.Name).Msg("technology created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, CreateTechnologyResponse{
			Message:      "Technology created successfully",
			TechnologyID: technology.ID,
		})
	}
}

// updateTechnology renames a technology
// @Summary Update technology
// @Tags Technologies
// @Accept json
// @Produce json
// @Param id path int true "Technology ID"
// @Param technology body TechnologyRequest true "New name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /technologies/{id} [put]
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := pathID(r, "id")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		var req TechnologyRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.TechnologyRepo().Rename(r.Context(), technologyID, req.Name); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Technology updated successfully")
	}
}

// deleteTechnology deletes a technology by id
// @Summary Delete technology
// @Tags Technologies
// @Produce json
// @Param id path int true "Technology ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Database query error"
// @Router /technologies/{id} [delete]
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := pathID(r, "id")
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.database.DeleteTechnology(r.Context(), technologyID); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Technology deleted successfully")
	}
}
