package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitWithoutRedisAllowsEverything(t *testing.T) {
	svc := NewRateLimitService(nil)

	for i := 0; i < 20; i++ {
		allowed, info, err := svc.IsAllowed("1.2.3.4", LimitLogin)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, -1, info.Remaining)
	}
}

func TestRateLimitConfig(t *testing.T) {
	svc := NewRateLimitService(NewRedisService(nil))

	assert.Equal(t, "Too many requests. Please try again later.", svc.Message("unknown"))
	assert.NotEmpty(t, svc.Message(LimitLogin))

	svc.SetConfig(RateLimitConfig{
		EndpointType: "custom",
		MaxRequests:  1,
		WindowSize:   time.Minute,
		BlockTime:    time.Minute,
		Message:      "slow down",
		IsActive:     true,
	})
	assert.Equal(t, "slow down", svc.Message("custom"))

	allowed, _, err := svc.IsAllowed("u1", "custom")
	require.NoError(t, err)
	assert.True(t, allowed)
}
