package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/rs/zerolog/log"
)

func respondData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, gin.H{
		"status": helpers.SuccessStatus,
		"data":   data,
	})
}

// respondError writes the error envelope. Errors without a code are logged and hidden from the client.
func respondError(ctx *gin.Context, err error) {
	e := helpers.AsError(err)
	if e.Code == helpers.CodeInternal {
		log.Error().Err(err).Str("url", ctx.Request.URL.String()).Msg("Error:")
	}
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(e.Status(), gin.H{
		"status": helpers.ErrorStatus,
		"error":  e,
	})
}

func respondStatusError(ctx *gin.Context, status int, code helpers.ErrorCode, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"status": helpers.ErrorStatus,
		"error":  &helpers.Error{Code: code, Message: message},
	})
}

func respondTooManyRequests(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"status": helpers.ErrorStatus,
		"error":  gin.H{"code": "TOO_MANY_REQUESTS", "message": message},
	})
}
