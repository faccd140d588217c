package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justsurfingit/longevity-jobs/internal/auth"
	"github.com/justsurfingit/longevity-jobs/internal/listing"
	"github.com/justsurfingit/longevity-jobs/internal/web"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires middleware, templates and routes around h.
func NewRouter(h *JobHandler, log *zap.SugaredLogger) (*gin.Engine, error) {
	tmpl, err := web.Templates(template.FuncMap{
		"href": pageHref,
	})
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), RequestID(), h.Recovery(), auth.CookiePassthrough(log))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/", h.ListPage)
	r.GET("/jobs", h.ListPage)

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	api := r.Group(apiPrefix)
	api.Use(cors.New(config))
	{
		api.GET("/health", HealthCheck)
		api.GET("/jobs", h.ListJobs)
	}
	return r, nil
}

// RequestID tags every request and response with an X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func pageHref(s listing.State) string {
	if q := s.Encode(); q != "" {
		return "/jobs?" + q
	}
	return "/jobs"
}
