package handler

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	noticeCookie = "painel_notice"

	noticeSuccess = "success"
	noticeError   = "error"
)

// Notice is a transient message shown once on the next rendered page, the
// panel's replacement for the browser toast.
type Notice struct {
	Kind    string
	Message string
}

func setNotice(c *gin.Context, kind, message string) {
	value := url.QueryEscape(kind + "|" + message)
	c.SetCookie(noticeCookie, value, 60, "/", "", false, true)
}

func popNotice(c *gin.Context) *Notice {
	raw, err := c.Cookie(noticeCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(noticeCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, found := strings.Cut(decoded, "|")
	if !found || message == "" {
		return nil
	}
	return &Notice{Kind: kind, Message: message}
}
