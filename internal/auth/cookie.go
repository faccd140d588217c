// Package auth carries the Supabase session cookie through requests. It
// does not validate, refresh or require the token.
package auth

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie is the session cookie set by the Supabase auth flow.
const TokenCookie = "sb-token"

const tokenKey = "auth.token"

// Static files, framework internals and images never carry session state.
var skipPath = regexp.MustCompile(`^/(_next/static/|_next/image|static/|favicon\.ico$)|\.(svg|png|jpe?g|gif|webp)$`)

// Skip reports whether path is excluded from the passthrough.
func Skip(path string) bool {
	return skipPath.MatchString(path)
}

// refresh is swapped in tests.
var refresh = refreshToken

// CookiePassthrough re-sets the incoming sb-token cookie on the response
// as HttpOnly, Secure, SameSite=Lax with Path=/. Anything going wrong here
// is logged and the request carries on unauthenticated.
func CookiePassthrough(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Skip(c.Request.URL.Path) {
			passthrough(c, log)
		}
		c.Next()
	}
}

func passthrough(c *gin.Context, log *zap.SugaredLogger) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Middleware error", "path", c.Request.URL.Path, "error", r)
		}
	}()

	tok, err := c.Cookie(TokenCookie)
	if err != nil || tok == "" {
		return
	}
	refresh(c, tok)
	c.Set(tokenKey, tok)
}

func refreshToken(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, tok, 0, "/", "", true, true)
}

// Token returns the session token seen by CookiePassthrough, or "".
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
