package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hoopsledger/pickboard/internal/api/shared/errors"
	"github.com/hoopsledger/pickboard/internal/api/shared/executor"
	"github.com/hoopsledger/pickboard/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetDashboard computes whichever view the selection names
	// GET /api/v1/dashboard?view=<picks|grid|selections>&year=<year>&round=<1|2|all>&team=<code>&sort=<board|risk|provenance>&lens=<all|at_risk|critical>&selected_type=<pick|selection>&selected_key=<key>
	GetDashboard(c *gin.Context)

	// GetPicks retrieves the pick list for one draft year
	// GET /api/v1/picks?year=<year>&round=<round>&team=<code>&sort=<sort>&lens=<lens>&selected_type=pick&selected_key=<TEAM-YEAR-ROUND>
	GetPicks(c *gin.Context)

	// GetGrid retrieves the ownership grid for the window starting at year
	// GET /api/v1/grid?year=<year>&round=<round>&team=<code>&sort=<sort>&lens=<lens>&selected_type=pick&selected_key=<TEAM-YEAR-ROUND>
	GetGrid(c *gin.Context)

	// GetSelections retrieves classified historical selections for one draft year
	// GET /api/v1/selections?year=<year>&round=<round>&team=<code>&sort=<sort>&lens=<lens>&selected_type=selection&selected_key=<transaction_id>
	GetSelections(c *gin.Context)

	// GetPick retrieves the detail of one pick
	// GET /api/v1/picks/:key
	GetPick(c *gin.Context)

	// HealthCheck returns the health status of the API and the warehouse freshness
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// GetDashboard computes whichever view the selection names
func (h *handler) GetDashboard(c *gin.Context) {
	raw, err := ParseSelectionQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetDashboard(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err, "Failed to get dashboard")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPicks retrieves the pick list
func (h *handler) GetPicks(c *gin.Context) {
	sel, ok := h.selection(c, domain.ViewPicks)
	if !ok {
		return
	}

	response, err := h.executor.GetPicks(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err, "Failed to get picks")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGrid retrieves the ownership grid
func (h *handler) GetGrid(c *gin.Context) {
	sel, ok := h.selection(c, domain.ViewGrid)
	if !ok {
		return
	}

	response, err := h.executor.GetGrid(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err, "Failed to get grid")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSelections retrieves classified historical selections
func (h *handler) GetSelections(c *gin.Context) {
	sel, ok := h.selection(c, domain.ViewSelections)
	if !ok {
		return
	}

	response, err := h.executor.GetSelections(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err, "Failed to get selections")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPick retrieves the detail of one pick
func (h *handler) GetPick(c *gin.Context) {
	key, err := ParsePickKeyParam(c, "key")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.NewInvalidPickKeyError(err))
		return
	}

	detail, err := h.executor.GetPick(c.Request.Context(), key)
	if err != nil {
		respondError(c, err, "Failed to get pick")
		return
	}

	if detail == nil {
		c.JSON(http.StatusNotFound, apierrors.NewPickNotFoundError(key))
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response, err := h.executor.GetHealth(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to check health")
		return
	}

	c.JSON(http.StatusOK, response)
}

// selection binds and normalizes the query, pinning the view to the route's
func (h *handler) selection(c *gin.Context, view domain.View) (domain.Selection, bool) {
	raw, err := ParseSelectionQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return domain.Selection{}, false
	}

	sel := h.executor.NormalizeSelection(raw)
	sel.View = view
	return sel, true
}
