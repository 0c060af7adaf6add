package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency replays the stored response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first request is still running.
// Handlers store the response under IdempotencyCacheKey and release the lock.
func Idempotency(rdb *redis.Client, lockTTL time.Duration) gin.HandlerFunc {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		// 1. cek cache
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			if json.Unmarshal([]byte(val), &cachedRes) == nil {
				response.Success(c, http.StatusOK, cachedRes, nil)
				c.Abort()
				return
			}
		}

		// 2. atomic lock, expires on its own if the server dies mid-request
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", lockTTL).Result()
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Idempotency store unavailable", nil)
			c.Abort()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeBusy, "Transaksi Anda sedang diproses, mohon tunggu sebentar.", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
