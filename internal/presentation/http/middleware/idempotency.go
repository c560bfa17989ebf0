package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's key
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored response can be replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds dependencies for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// bodyRecorder duplicates everything written to the response into a buffer
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func requestUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func replay(c *gin.Context, key *entity.IdempotencyKey) {
	c.Header("X-Idempotency-Replayed", "true")
	c.Data(key.ResponseCode, "application/json", []byte(key.ResponseBody))
	c.Abort()
}

func record(c *gin.Context, cfg IdempotencyConfig, key string, userID uuid.UUID, body string) {
	ikey := &entity.IdempotencyKey{
		Key:          key,
		UserID:       userID,
		Endpoint:     c.Request.Method + " " + c.FullPath(),
		ResponseCode: c.Writer.Status(),
		ResponseBody: body,
		ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
	}
	_ = cfg.Repo.Create(c.Request.Context(), ikey)
}

// Idempotency replays a stored response when the client retries a mutating
// request with a key it already used. Requests without a key pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := requestUserID(c)
		if !ok {
			c.Next()
			return
		}

		existing, err := cfg.Repo.GetByKey(c.Request.Context(), key, userID)
		if err == nil && existing != nil && !existing.IsExpired() {
			replay(c, existing)
			return
		}

		rec := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		record(c, cfg, key, userID, rec.body.String())
	}
}

// IdempotencyRequired rejects POST requests that do not carry a key. Used on
// checkout, where a retried double-tap must never charge twice.
func IdempotencyRequired(cfg IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			c.Abort()
			return
		}

		userID, ok := requestUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		existing, err := cfg.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to check idempotency key",
			})
			c.Abort()
			return
		}
		if existing != nil && !existing.IsExpired() {
			replay(c, existing)
			return
		}

		rec := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		// Only successful responses are replayable; a failed checkout may be retried
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			record(c, cfg, key, userID, rec.body.String())
		}
	}
}
