package v1

import (
	"net/http"

	"job-alerts-backend/internal/delivery/http/response"
	"job-alerts-backend/internal/domain"
	"job-alerts-backend/pkg/apperror"
	"job-alerts-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AlertHandler struct {
	alertUC domain.AlertUsecase
}

func NewAlertHandler(rg *gin.RouterGroup, alertUC domain.AlertUsecase) {
	handler := &AlertHandler{alertUC: alertUC}

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", handler.List)
		alerts.POST("", handler.Create)
		alerts.PATCH("/:id/toggle", handler.Toggle)
		alerts.DELETE("/:id", handler.Delete)
	}

	rg.GET("/dashboard", handler.Dashboard)
}

// CreateAlertRequest only checks presence of title and location and the enum
// values; everything else is free text.
type CreateAlertRequest struct {
	JobTitle  string `json:"job_title" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Salary    string `json:"salary"`
	JobType   string `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Keywords  string `json:"keywords"`
	Frequency string `json:"frequency" binding:"omitempty,oneof=realtime daily weekly"`
}

type CreateAlertResponse struct {
	Alert           domain.AlertView  `json:"alert"`
	Matches         []domain.JobMatch `json:"matches"`
	MatchesDeferred bool              `json:"matches_deferred"`
	Dashboard       *domain.Dashboard `json:"dashboard"`
}

// CreateAlert godoc
// @Summary      Create a job alert
// @Description  Save search criteria and generate a batch of scored matches for it
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        alert  body      CreateAlertRequest  true  "Alert criteria"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /alerts [post]
func (h *AlertHandler) Create(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
			return
		}
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	criteria := domain.AlertCriteria{
		JobTitle:  req.JobTitle,
		Location:  req.Location,
		Salary:    req.Salary,
		JobType:   req.JobType,
		Keywords:  req.Keywords,
		Frequency: req.Frequency,
	}

	result, err := h.alertUC.CreateAlert(c, criteria)
	if err != nil {
		c.Error(err)
		return
	}

	dashboard, err := h.alertUC.Dashboard(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Alert created", CreateAlertResponse{
		Alert:           domain.NewAlertView(result.Alert),
		Matches:         result.Matches,
		MatchesDeferred: result.MatchesDeferred,
		Dashboard:       dashboard,
	})
}

// ListAlerts godoc
// @Summary      List alerts
// @Description  All alerts in creation order
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.alertUC.ListAlerts(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alert list", gin.H{
		"alerts": domain.NewAlertViews(alerts),
		"total":  len(alerts),
	})
}

// ToggleAlert godoc
// @Summary      Pause or resume an alert
// @Description  Flips the active flag. Unknown ids are accepted and change nothing.
// @Tags         alerts
// @Produce      json
// @Param        id   path      string  true  "Alert ID"
// @Success      200  {object}  response.Response
// @Router       /alerts/{id}/toggle [patch]
func (h *AlertHandler) Toggle(c *gin.Context) {
	if err := h.alertUC.ToggleAlert(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	h.respondDashboard(c, "Alert toggled")
}

// DeleteAlert godoc
// @Summary      Delete an alert
// @Description  Removes the alert. Matches already generated for it are kept. Unknown ids are accepted and change nothing.
// @Tags         alerts
// @Produce      json
// @Param        id   path      string  true  "Alert ID"
// @Success      200  {object}  response.Response
// @Router       /alerts/{id} [delete]
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alertUC.DeleteAlert(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	h.respondDashboard(c, "Alert deleted")
}

// Dashboard godoc
// @Summary      Alerts and matches snapshot
// @Description  Current alerts, matches and their counts
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard [get]
func (h *AlertHandler) Dashboard(c *gin.Context) {
	h.respondDashboard(c, "Dashboard")
}

func (h *AlertHandler) respondDashboard(c *gin.Context, message string) {
	dashboard, err := h.alertUC.Dashboard(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, message, dashboard)
}
