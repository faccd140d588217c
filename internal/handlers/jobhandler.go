package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/longevity-jobs/internal/auth"
	"github.com/justsurfingit/longevity-jobs/internal/dtos"
	"github.com/justsurfingit/longevity-jobs/internal/listing"
	"github.com/justsurfingit/longevity-jobs/internal/services"
	"github.com/justsurfingit/longevity-jobs/internal/supabase"
	"github.com/justsurfingit/longevity-jobs/internal/web"
)

const (
	loadFailed = "Failed to load jobs."
	apiPrefix  = "/api/v1"
)

type JobHandler struct {
	JobService *services.JobService
	Meta       web.Meta
	Log        *zap.SugaredLogger
}

func NewJobHandler(j *services.JobService, meta web.Meta, log *zap.SugaredLogger) *JobHandler {
	return &JobHandler{
		JobService: j,
		Meta:       meta,
		Log:        log,
	}
}

// ListPage is GET / and GET /jobs
func (h *JobHandler) ListPage(c *gin.Context) {
	state := listing.ParseState(c.Request.URL.Query())

	view, err := h.JobService.Listing(h.requestContext(c), state)
	if err != nil {
		h.Log.Errorw("Listing page failed", "path", c.Request.URL.Path, "error", err)
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Meta":    h.Meta,
			"Heading": loadFailed,
		})
		return
	}

	c.HTML(http.StatusOK, "jobs.html", gin.H{
		"Meta": h.Meta,
		"View": view,
	})
}

// ListJobs is GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dtos.JobListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	view, err := h.JobService.Listing(h.requestContext(c), req.State())
	if err != nil {
		h.Log.Errorw("Listing API failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": loadFailed})
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobListResponse(view))
}

// requestContext forwards the session token so row level security sees
// the signed-in user when there is one.
func (h *JobHandler) requestContext(c *gin.Context) context.Context {
	return supabase.WithAccessToken(c.Request.Context(), auth.Token(c))
}

// Recovery renders the generic error page for a panicking handler, or a
// JSON error under the API prefix.
func (h *JobHandler) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		h.Log.Errorw("Uncaught error", "path", c.Request.URL.Path, "error", rec)
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/") {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Meta":    h.Meta,
			"Heading": "Something went wrong",
			"Detail":  "Please try refreshing the page",
		})
		c.Abort()
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
