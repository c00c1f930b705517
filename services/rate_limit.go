package services

import (
	stdctx "context"
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/edu_api/dto"
	log "github.com/sirupsen/logrus"
)

const (
	LimitLogin    = "login"
	LimitRegister = "register"
	LimitProgress = "progress"
	LimitGeneral  = "api_general"
)

type RateLimitService struct {
	context.DefaultService

	configs  map[string]*RateLimitConfig
	mutex    sync.RWMutex
	redisSvc *RedisService
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
	Message      string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.initDefaultConfigs()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	if redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService); ok {
		svc.redisSvc = redisSvc
	}
	return nil
}

func NewRateLimitService(redisSvc *RedisService) *RateLimitService {
	svc := &RateLimitService{redisSvc: redisSvc}
	svc.initDefaultConfigs()
	return svc
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		LimitLogin: {
			EndpointType: LimitLogin,
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			BlockTime:    30 * time.Minute,
			Message:      "Too many login attempts. Please try again later.",
			IsActive:     true,
		},
		LimitRegister: {
			EndpointType: LimitRegister,
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			BlockTime:    60 * time.Minute,
			Message:      "Too many registration attempts. Please try again later.",
			IsActive:     true,
		},
		LimitProgress: {
			EndpointType: LimitProgress,
			MaxRequests:  120,
			WindowSize:   time.Hour,
			BlockTime:    15 * time.Minute,
			Message:      "Too many progress updates. Please take a break.",
			IsActive:     true,
		},
		LimitGeneral: {
			EndpointType: LimitGeneral,
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Message:      "Too many requests. Please slow down.",
			IsActive:     true,
		},
	}
}

// SetConfig overrides the limits for one endpoint type.
func (svc *RateLimitService) SetConfig(cfg RateLimitConfig) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	svc.configs[cfg.EndpointType] = &cfg
}

func (svc *RateLimitService) config(endpointType string) (*RateLimitConfig, bool) {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()
	cfg, ok := svc.configs[endpointType]
	if !ok || !cfg.IsActive {
		return nil, false
	}
	return cfg, true
}

// Message is the client-facing text for a rejected request.
func (svc *RateLimitService) Message(endpointType string) string {
	if cfg, ok := svc.config(endpointType); ok && cfg.Message != "" {
		return cfg.Message
	}
	return "Too many requests. Please try again later."
}

// IsAllowed counts one request for identifier in a fixed redis window. Once
// the window is exhausted the identifier is blocked for BlockTime. Without
// redis every request is allowed.
func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	cfg, ok := svc.config(endpointType)
	if !ok || !svc.redisSvc.Enabled() {
		return true, &dto.RateLimitInfo{Allowed: true, Remaining: -1}, nil
	}

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), time.Second)
	defer cancel()

	now := time.Now()
	blockKey := fmt.Sprintf("ratelimit:block:%s:%s", endpointType, identifier)
	countKey := fmt.Sprintf("ratelimit:count:%s:%s", endpointType, identifier)

	blocked, err := svc.redisSvc.BlockedFor(ctx, blockKey)
	if err != nil {
		return false, nil, err
	}
	if blocked > 0 {
		until := now.Add(blocked)
		return false, &dto.RateLimitInfo{Allowed: false, Remaining: 0, ResetTime: &until, BlockedUntil: &until}, nil
	}

	count, ttl, err := svc.redisSvc.IncrWindow(ctx, countKey, cfg.WindowSize)
	if err != nil {
		return false, nil, err
	}

	if count > int64(cfg.MaxRequests) {
		until := now.Add(cfg.BlockTime)
		if err := svc.redisSvc.SetBlock(ctx, blockKey, cfg.BlockTime); err != nil {
			return false, nil, err
		}
		log.WithFields(log.Fields{"endpoint": endpointType, "identifier": identifier}).Warn("Rate limit exceeded")
		return false, &dto.RateLimitInfo{Allowed: false, Remaining: 0, ResetTime: &until, BlockedUntil: &until}, nil
	}

	if ttl <= 0 {
		ttl = cfg.WindowSize
	}
	reset := now.Add(ttl)
	return true, &dto.RateLimitInfo{
		Allowed:   true,
		Remaining: cfg.MaxRequests - int(count),
		ResetTime: &reset,
	}, nil
}
