package middleware

import (
	"bytes"
	"net/http"
	"time"

	"boatyard/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger - id запроса и строка лога на каждый запрос
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request handled")
	}
}

// cacheWriter копирует тело ответа для записи в кэш
type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheMiddleware - GET-ответы из кэша Redis, успешные (200) сохраняются.
// Ответы из кэша могут отставать от БД на время до CacheTTL.
// Ошибки кэша только логируются, запрос обрабатывается как обычно.
func CacheMiddleware(cache *utils.ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := utils.CacheKey(c.Request.Method, c.Request.URL.RequestURI())
		body, ok, err := cache.Get(ctx, key)
		if err != nil {
			logrus.Warnf("cache get %s: %v", key, err)
		}
		if ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("X-Cache", "MISS")
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		if err := cache.Set(ctx, key, w.body.Bytes()); err != nil {
			logrus.Warnf("cache set %s: %v", key, err)
		}
	}
}
