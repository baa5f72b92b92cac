package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler           projectHandler
	technologyHandler        technologyHandler
	projectTechnologyHandler projectTechnologyHandler
	systemHandler            systemHandler
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Database query error"`
}

// MessageResponse acknowledges a successful write
type MessageResponse struct {
	Message string `json:"message" example:"Project updated successfully"`
}

// ProjectRequest carries the five mutable project fields
type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Github      string `json:"github"`
	Demo        string `json:"demo"`
}

type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID uint   `json:"projectId"`
}

type TechnologyRequest struct {
	Name string `json:"name"`
}

type CreateTechnologyResponse struct {
	Message      string `json:"message"`
	TechnologyID uint   `json:"technologyId"`
}

// LinkTechnologiesRequest links technologies, by name, to a project
type LinkTechnologiesRequest struct {
	ProjectID    *uint    `json:"projectId" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,dive,required"`
}

// ReplaceTechnologiesRequest is the new full technology set of a project
type ReplaceTechnologiesRequest struct {
	Technologies []string `json:"technologies" validate:"required,dive,required"`
}

// UnlinkTechnologyRequest identifies one project/technology link
type UnlinkTechnologyRequest struct {
	ProjectID    *uint `json:"projectId" validate:"required"`
	TechnologyID *uint `json:"technologyId" validate:"required"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	StartedAt string `json:"startedAt"`
	Uptime    string `json:"uptime"`
}
