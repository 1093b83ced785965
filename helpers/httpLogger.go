package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestLogger logs every request and its response. Response bodies are only
// logged for failed JSON responses.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var reqBodyBytes []byte
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			reqBodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
			event = log.Warn()
		case status >= http.StatusInternalServerError:
			event = log.Error()
		}

		event = event.Str("method", c.Request.Method).
			Str("url", c.Request.URL.String()).
			Int("status", status).
			Dur("latency", time.Since(start))

		if status >= http.StatusBadRequest {
			if len(reqBodyBytes) > 0 && json.Valid(reqBodyBytes) {
				event = event.RawJSON("request", reqBodyBytes)
			}
			respBodyBytes := recorder.body.Bytes()
			if len(respBodyBytes) > 0 && json.Valid(respBodyBytes) {
				event = event.RawJSON("response", respBodyBytes)
			}
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.Msg("HTTP request:")
	}
}
