package middleware

import (
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/jsonize/internal/config"
)

// Preflight answers CORS OPTIONS requests with 204 and no body. Origins are
// matched against the comma separated allow list, "*" allows all.
func Preflight(cfg config.CORSConfig) fasthttp.RequestHandler {
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))
	return func(ctx *fasthttp.RequestCtx) {
		h := &ctx.Response.Header
		h.Set("Access-Control-Allow-Methods", cfg.AllowMethods)
		h.Set("Access-Control-Allow-Headers", cfg.AllowHeaders)
		if origin := AllowedOrigin(cfg.AllowOrigin, string(ctx.Request.Header.Peek("Origin"))); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
		}
		h.Set("Access-Control-Max-Age", maxAge)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	}
}

// AllowedOrigin returns the value for Access-Control-Allow-Origin, or "" when
// origin is not allowed.
func AllowedOrigin(allow, origin string) string {
	if allow == "*" {
		return "*"
	}
	if origin == "" {
		return ""
	}
	for _, o := range strings.Split(allow, ",") {
		if strings.TrimSpace(o) == origin {
			return origin
		}
	}
	return ""
}
