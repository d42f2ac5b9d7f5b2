package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillsUC "github.com/J33rry/predusk/internal/application/usecase/skills"
	"github.com/J33rry/predusk/pkg/logger"
)

type SkillHandler struct {
	topSkillsUseCase *skillsUC.TopSkillsUseCase
	logger           logger.Logger
}

func NewSkillHandler(uc *skillsUC.TopSkillsUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		topSkillsUseCase: uc,
		logger:           log,
	}
}

func (h *SkillHandler) TopSkills(c *gin.Context) {
	output, err := h.topSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Ranking)
}
