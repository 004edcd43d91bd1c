package handler

import (
	"errors"
	"net/http"
	"time"

	"kvcache/internal/core/logger"
	"kvcache/internal/features/kv/domain"
	"kvcache/internal/features/kv/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// KVHandler handles HTTP requests for the cache contract.
type KVHandler struct {
	service ports.KVService
}

// NewKVHandler creates a new KVHandler.
func NewKVHandler(service ports.KVService) *KVHandler {
	return &KVHandler{service: service}
}

// SetKeyRequest represents the request body for storing a value.
type SetKeyRequest struct {
	Value      any   `json:"value"`
	TTLSeconds int64 `json:"ttl_seconds"` // 0 means never expires
}

// BatchGetRequest represents the request body for a multi-key read.
type BatchGetRequest struct {
	Keys    []string `json:"keys"`
	Default any      `json:"default"`
}

// BatchSetRequest represents the request body for a multi-key write.
type BatchSetRequest struct {
	Values     map[string]any `json:"values"`
	TTLSeconds int64          `json:"ttl_seconds"`
}

// BatchDeleteRequest represents the request body for a multi-key delete.
type BatchDeleteRequest struct {
	Keys []string `json:"keys"`
}

func (h *KVHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, domain.ErrInvalidKey) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid key. Keys must be non-empty",
		})
	}
	if errors.Is(err, domain.ErrInvalidArgument) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	logger.Get().Error("Cache operation failed", zap.String("op", op), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// GetKey handles GET /keys/:key.
// @Summary Get a cached value
// @Description Retrieves the live value stored under a key.
// @Tags Keys
// @Produce json
// @Param key path string true "Cache key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys/{key} [get]
func (h *KVHandler) GetKey(c *fiber.Ctx) error {
	key := c.Params("key")

	value, found, err := h.service.Get(c.Context(), key)
	if err != nil {
		return h.fail(c, "get", err)
	}
	if !found {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Key not found",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"value": value})
}

// SetKey handles PUT /keys/:key.
// @Summary Store a value
// @Description Stores a value under a key with an optional TTL in seconds.
// @Tags Keys
// @Accept json
// @Produce json
// @Param key path string true "Cache key"
// @Param record body SetKeyRequest true "Value and TTL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys/{key} [put]
func (h *KVHandler) SetKey(c *fiber.Ctx) error {
	var req SetKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "set", domain.ErrInvalidArgument)
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	if err := h.service.Set(c.Context(), c.Params("key"), req.Value, ttl); err != nil {
		return h.fail(c, "set", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Value stored successfully",
	})
}

// DeleteKey handles DELETE /keys/:key.
// @Summary Delete a key
// @Description Removes a key; reports whether anything was removed.
// @Tags Keys
// @Produce json
// @Param key path string true "Cache key"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /keys/{key} [delete]
func (h *KVHandler) DeleteKey(c *fiber.Ctx) error {
	deleted, err := h.service.Delete(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, "delete", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": deleted})
}

// KeyExists handles GET /keys/:key/exists.
// @Summary Check key existence
// @Description Reports whether a key holds a live value.
// @Tags Keys
// @Produce json
// @Param key path string true "Cache key"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /keys/{key}/exists [get]
func (h *KVHandler) KeyExists(c *fiber.Ctx) error {
	exists, err := h.service.Has(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, "has", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"exists": exists})
}

// GetMany handles POST /keys/mget.
// @Summary Get several keys
// @Description Resolves several keys at once; misses yield the given default.
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body BatchGetRequest true "Keys and default"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys/mget [post]
func (h *KVHandler) GetMany(c *fiber.Ctx) error {
	var req BatchGetRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "mget", domain.ErrInvalidArgument)
	}

	values, err := h.service.GetMany(c.Context(), req.Keys, req.Default)
	if err != nil {
		return h.fail(c, "mget", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"values": values})
}

// SetMany handles POST /keys/mset.
// @Summary Store several values
// @Description Stores every entry with one TTL. Batch atomicity follows the configured backend.
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body BatchSetRequest true "Values and TTL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys/mset [post]
func (h *KVHandler) SetMany(c *fiber.Ctx) error {
	var req BatchSetRequest
	if err := c.BodyParser(&req); err != nil || req.Values == nil {
		return h.fail(c, "mset", domain.ErrInvalidArgument)
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	if err := h.service.SetMany(c.Context(), req.Values, ttl); err != nil {
		return h.fail(c, "mset", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Values stored successfully",
	})
}

// DeleteMany handles POST /keys/mdel.
// @Summary Delete several keys
// @Description Removes every given key; the boolean follows the backend's batch policy.
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body BatchDeleteRequest true "Keys"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys/mdel [post]
func (h *KVHandler) DeleteMany(c *fiber.Ctx) error {
	var req BatchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "mdel", domain.ErrInvalidArgument)
	}

	deleted, err := h.service.DeleteMany(c.Context(), req.Keys)
	if err != nil {
		return h.fail(c, "mdel", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": deleted})
}

// Flush handles DELETE /keys.
// @Summary Flush the cache
// @Description Removes every stored entry.
// @Tags Keys
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /keys [delete]
func (h *KVHandler) Flush(c *fiber.Ctx) error {
	if err := h.service.Flush(c.Context()); err != nil {
		return h.fail(c, "flush", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Cache flushed successfully",
	})
}
