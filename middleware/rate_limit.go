package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
)

// Limiter counts requests per identifier and endpoint type.
type Limiter interface {
	IsAllowed(identifier, endpointType string) (bool, *dto.RateLimitInfo, error)
	Message(endpointType string) string
}

// RateLimit throttles by authenticated user, falling back to client IP.
// Limiter failures let the request through.
func RateLimit(limiter Limiter, endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := CurrentUserID(c)
		if identifier == "" {
			identifier = getClientIP(c)
		}

		allowed, info, err := limiter.IsAllowed(identifier, endpointType)
		if err != nil {
			log.WithFields(log.Fields{"endpoint": endpointType, "identifier": identifier, "error": err.Error()}).Warn("Rate limit check failed")
			return c.Next()
		}

		addRateLimitHeaders(c, info)

		if !allowed {
			return handleRateLimitExceeded(c, limiter.Message(endpointType), info)
		}
		return c.Next()
	}
}

func addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil {
		return
	}

	if info.Remaining >= 0 {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	}

	if info.ResetTime != nil {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}

	if info.BlockedUntil != nil {
		retryAfter := int(time.Until(*info.BlockedUntil).Seconds())
		if retryAfter > 0 {
			c.Set("Retry-After", strconv.Itoa(retryAfter))
		}
	}
}

func handleRateLimitExceeded(c *fiber.Ctx, message string, info *dto.RateLimitInfo) error {
	var data interface{}
	if info != nil && info.BlockedUntil != nil {
		data = fiber.Map{
			"blockedUntil": info.BlockedUntil.Unix(),
			"retryAfter":   int(time.Until(*info.BlockedUntil).Seconds()),
		}
	}
	return shared.ResponseJSON(c, http.StatusTooManyRequests, message, data)
}

func getClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if cfIP := c.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.IP()
	}
	return ip
}
