package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie describes the session cookie carrying the signed token.
type Cookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func (ck Cookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, token, int(ck.MaxAge.Seconds()), "/", "", ck.Secure, true)
}

func (ck Cookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, "", -1, "/", "", ck.Secure, true)
}
