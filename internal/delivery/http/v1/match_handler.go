package v1

import (
	"net/http"

	"job-alerts-backend/internal/delivery/http/response"
	"job-alerts-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	alertUC domain.AlertUsecase
}

func NewMatchHandler(rg *gin.RouterGroup, alertUC domain.AlertUsecase) {
	handler := &MatchHandler{alertUC: alertUC}
	rg.GET("/matches", handler.List)
}

// ListMatches godoc
// @Summary      List job matches
// @Description  Every match generated so far, oldest batch first
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	matches, err := h.alertUC.ListMatches(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match list", gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}
