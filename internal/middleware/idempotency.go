package middleware

import (
	"bytes"
	"net/http"
	"time"

	"leave-approval/internal/shared/apperror"
	"leave-approval/internal/shared/contextutil"
	"leave-approval/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
	idempotencyLock   = 30 * time.Second
)

// bodyRecorder keeps a copy of what the handler writes so a successful
// response can be replayed.
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored 2xx response for a repeated
// Idempotency-Key on POST requests, and rejects a duplicate that arrives
// while the first one is still running. It is a pass-through when rdb is nil
// or the header is absent.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")

		cacheKey := "idemp:" + c.FullPath() + ":" + idempKey
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			log.Info("idempotent replay", zap.String("key", idempKey))
			c.Header("Idempotent-Replayed", "true")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}
		if err != redis.Nil {
			log.Warn("idempotency cache read failed", zap.Error(err))
		}

		// Lock pendek agar jika server crash, lock otomatis hilang.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLock).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "Request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		if status := recorder.Status(); status >= 200 && status < 300 {
			if err := rdb.Set(ctx, cacheKey, recorder.body.Bytes(), idempotencyTTL).Err(); err != nil {
				log.Warn("idempotency cache write failed", zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}
