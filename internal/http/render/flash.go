package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunarest.com/app/internal/http/flash"
	"lunarest.com/app/internal/http/middleware"
	"lunarest.com/app/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
