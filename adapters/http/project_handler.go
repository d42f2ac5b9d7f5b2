package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/J33rry/predusk/internal/application/usecase/project"
	"github.com/J33rry/predusk/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	logger              logger.Logger
}

func NewProjectHandler(listUC *projectUC.ListProjectsUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		logger:              log,
	}
}

// ListProjects answers /projects with an optional exact, case-insensitive
// skill filter.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	skill := c.Query("skill")

	input := projectUC.ListProjectsInput{Skill: skill}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}

	resp := ProjectListResponse{
		Count:    len(dtos),
		Projects: dtos,
	}
	if skill != "" {
		resp.Skill = &skill
	}
	c.JSON(http.StatusOK, resp)
}
