package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercato/internal/config"
	"mercato/internal/domain/user"
)

func TestServiceStartStop(t *testing.T) {
	pubsub := newTestPubSub(t)
	overridePublisher(t, pubsub)
	overrideSubscriber(t, pubsub)

	userEvents := &envelopeRecorder{}
	productEvents := &envelopeRecorder{}

	svc := NewService(testKafkaConfig(), nopLogger{})

	regs := []Registration{
		{
			GroupID:    "api-server-user-events",
			Topics:     []string{TopicUserEvents},
			Handler:    userEvents.handle,
			AutoCommit: true,
		},
		{
			GroupID:    "api-server-product-events",
			Topics:     []string{TopicProductEvents},
			Handler:    productEvents.handle,
			AutoCommit: true,
		},
	}

	require.NoError(t, svc.Start(context.Background(), regs))

	st := svc.Status()
	assert.True(t, st.Running)
	assert.True(t, st.ProducerConnected)
	require.Len(t, st.Groups, 2)
	for _, g := range st.Groups {
		assert.True(t, g.Running)
	}

	// One event per domain: each handler fires exactly once, no
	// cross-delivery between topics.
	u := &user.User{ID: "u1", Email: "ada@example.com"}
	require.NoError(t, svc.Producer().PublishUserCreated(context.Background(), u, ""))
	require.NoError(t, svc.Producer().PublishEvent(context.Background(), TopicProductEvents, EventProductCreated, map[string]string{"id": "p1"}, nil))

	require.Eventually(t, func() bool {
		return userEvents.count() == 1 && productEvents.count() == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{EventUserCreated}, userEvents.types())
	assert.Equal(t, []string{EventProductCreated}, productEvents.types())

	require.NoError(t, svc.Stop(context.Background()))
	assert.False(t, svc.Status().Running)
	assert.False(t, svc.Status().ProducerConnected)
}

func TestServiceStartIsIdempotent(t *testing.T) {
	pubsub := newTestPubSub(t)
	calls := overridePublisher(t, pubsub)
	overrideSubscriber(t, pubsub)

	svc := NewService(testKafkaConfig(), nopLogger{})
	regs := []Registration{{
		GroupID:    "api-server-user-events",
		Topics:     []string{TopicUserEvents},
		Handler:    (&envelopeRecorder{}).handle,
		AutoCommit: true,
	}}

	require.NoError(t, svc.Start(context.Background(), regs))
	require.NoError(t, svc.Start(context.Background(), regs))
	assert.Equal(t, 1, *calls)

	require.NoError(t, svc.Stop(context.Background()))
}

func TestServiceStopIsIdempotent(t *testing.T) {
	pubsub := newTestPubSub(t)
	overridePublisher(t, pubsub)
	overrideSubscriber(t, pubsub)

	svc := NewService(testKafkaConfig(), nopLogger{})

	// Safe before start.
	require.NoError(t, svc.Stop(context.Background()))
	assert.False(t, svc.Status().Running)

	require.NoError(t, svc.Start(context.Background(), []Registration{{
		GroupID:    "api-server-audit-logs",
		Topics:     []string{TopicAuditLogs},
		Handler:    (&envelopeRecorder{}).handle,
		AutoCommit: true,
	}}))

	require.NoError(t, svc.Stop(context.Background()))
	require.NoError(t, svc.Stop(context.Background()))
	assert.False(t, svc.Status().Running)
	assert.False(t, svc.Status().ProducerConnected)
}

func TestServiceStartFailsFast(t *testing.T) {
	pubsub := newTestPubSub(t)
	overridePublisher(t, pubsub)

	origSubscriber := newSubscriber
	newSubscriber = func(cfg config.KafkaConfig, reg Registration, logger watermill.LoggerAdapter) (message.Subscriber, error) {
		if reg.GroupID == "api-server-product-events" {
			return nil, errors.New("broker unreachable")
		}
		return pubsub, nil
	}
	t.Cleanup(func() { newSubscriber = origSubscriber })

	svc := NewService(testKafkaConfig(), nopLogger{})

	err := svc.Start(context.Background(), []Registration{
		{
			GroupID:    "api-server-user-events",
			Topics:     []string{TopicUserEvents},
			Handler:    (&envelopeRecorder{}).handle,
			AutoCommit: true,
		},
		{
			GroupID:    "api-server-product-events",
			Topics:     []string{TopicProductEvents},
			Handler:    (&envelopeRecorder{}).handle,
			AutoCommit: true,
		},
	})

	// A single failed registration fails the whole boot and tears down
	// what already started.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unreachable")

	st := svc.Status()
	assert.False(t, st.Running)
	assert.False(t, st.ProducerConnected)
	assert.Empty(t, st.Groups)
}
