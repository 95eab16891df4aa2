package services

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
)

// RateLimitService applies fixed-window request limits per client. Windows
// live in memory, so restarts reset counters and limits are per instance.
type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig

	mutex   sync.Mutex
	windows map[string]*rateWindow

	closed chan struct{}
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
}

type rateWindow struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.windows = make(map[string]*rateWindow)
	svc.configs = map[string]*RateLimitConfig{
		"login": {
			EndpointType: "login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			BlockTime:    30 * time.Minute,
		},
		"register": {
			EndpointType: "register",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			BlockTime:    60 * time.Minute,
		},
		"spin": {
			EndpointType: "spin",
			MaxRequests:  60,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
		},
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
		},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.closed = make(chan struct{}, 1)
	go svc.startCleanupJob()
	return nil
}

func (svc *RateLimitService) Shutdown() {
	svc.closed <- struct{}{}
}

// IsAllowed checks and counts one request for the identifier against the
// endpoint's window. Unknown endpoint types are always allowed.
func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, time.Time) {
	config, exists := svc.configs[endpointType]
	if !exists {
		return true, time.Time{}
	}

	now := time.Now()
	key := endpointType + ":" + identifier

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	window, ok := svc.windows[key]
	if !ok {
		window = &rateWindow{windowStart: now}
		svc.windows[key] = window
	}

	if now.Before(window.blockedUntil) {
		return false, window.blockedUntil
	}

	if now.Sub(window.windowStart) >= config.WindowSize {
		window.count = 0
		window.windowStart = now
		window.blockedUntil = time.Time{}
	}

	if window.count >= config.MaxRequests {
		window.blockedUntil = now.Add(config.BlockTime)
		return false, window.blockedUntil
	}

	window.count++
	return true, window.windowStart.Add(config.WindowSize)
}

// RateLimit limits requests per client IP for one endpoint type.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, resetAt := svc.IsAllowed(getClientIP(c), endpointType)

		if !resetAt.IsZero() {
			c.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))
		}

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter > 0 {
				c.Set("Retry-After", strconv.Itoa(retryAfter))
			}
			return shared.NewTooManyRequestsError(nil, "Too many requests. Please try again later.")
		}

		return c.Next()
	}
}

// UserRateLimit limits by authenticated user, falling back to client IP.
func (svc *RateLimitService) UserRateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := ""
		if userID, ok := c.Locals(shared.UserID).(string); ok {
			identifier = userID
		}
		if identifier == "" {
			identifier = getClientIP(c)
		}

		allowed, resetAt := svc.IsAllowed(identifier, endpointType)
		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter > 0 {
				c.Set("Retry-After", strconv.Itoa(retryAfter))
			}
			return shared.NewTooManyRequestsError(nil, "Too many requests. Please try again later.")
		}

		return c.Next()
	}
}

func (svc *RateLimitService) cleanupExpired() {
	now := time.Now()

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	for key, window := range svc.windows {
		config, exists := svc.configs[strings.SplitN(key, ":", 2)[0]]
		if !exists {
			delete(svc.windows, key)
			continue
		}
		if now.After(window.blockedUntil) && now.Sub(window.windowStart) >= config.WindowSize {
			delete(svc.windows, key)
		}
	}
}

func (svc *RateLimitService) startCleanupJob() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.cleanupExpired()
			log.Debug("Rate limit window cleanup completed")
		case <-svc.closed:
			return
		}
	}
}

func getClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if ip != "" {
				return ip
			}
		}
	}

	realIP := c.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}

	return ip
}
