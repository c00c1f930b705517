package services

import (
	"testing"
	"time"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/stretchr/testify/assert"
)

func TestMinIOObjectName(t *testing.T) {
	svc := &MinIOService{publicURL: "http://localhost:9000", bucketName: "edu-platform"}

	url := svc.ObjectURL("avatars/u1/a.png")
	assert.Equal(t, "http://localhost:9000/edu-platform/avatars/u1/a.png", url)

	name, ok := svc.ObjectName(url)
	assert.True(t, ok)
	assert.Equal(t, "avatars/u1/a.png", name)

	_, ok = svc.ObjectName("https://gravatar.com/avatar/abc")
	assert.False(t, ok)
	_, ok = svc.ObjectName("")
	assert.False(t, ok)
}

func TestEventServiceDisabledDropsEvents(t *testing.T) {
	svc := &EventService{}
	assert.False(t, svc.Enabled())
	svc.PublishPointsAwarded(dto.PointsAwardedEvent{StudentID: "s1"})

	var nilSvc *EventService
	assert.False(t, nilSvc.Enabled())
	nilSvc.PublishPointsAwarded(dto.PointsAwardedEvent{StudentID: "s1"})
}

func TestEventServiceDropsWhenBufferFull(t *testing.T) {
	svc := &EventService{events: make(chan dto.PointsAwardedEvent, 1)}

	svc.PublishPointsAwarded(dto.PointsAwardedEvent{StudentID: "s1", OccurredAt: time.Now()})
	svc.PublishPointsAwarded(dto.PointsAwardedEvent{StudentID: "s2", OccurredAt: time.Now()})

	assert.Len(t, svc.events, 1)
	assert.Equal(t, "s1", (<-svc.events).StudentID)
}
