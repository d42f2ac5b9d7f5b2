package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/J33rry/predusk/internal/application/usecase/search"
	"github.com/J33rry/predusk/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

// Search answers /search?q= with hits grouped by entity type.
func (h *SearchHandler) Search(c *gin.Context) {
	input := searchUC.SearchInput{Query: c.Query("q")}

	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	resp := SearchResponse{
		Query: output.Query,
		Results: SearchResultsDTO{
			Profiles: output.Profiles,
			Projects: output.Projects,
			Work:     output.Work,
		},
		Counts: SearchCountsDTO{
			Profiles: len(output.Profiles),
			Projects: len(output.Projects),
			Work:     len(output.Work),
			Total:    len(output.Profiles) + len(output.Projects) + len(output.Work),
		},
	}
	c.JSON(http.StatusOK, resp)
}
