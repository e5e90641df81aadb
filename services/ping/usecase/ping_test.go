package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/ping"
	"github.com/guestnav/guestnav/services/ping/mocks"
	"github.com/guestnav/guestnav/services/ping/repository"
)

func pingConfig() *models.Config {
	return &models.Config{
		Ping: models.PingConfig{TTLSec: 30},
	}
}

func newPingUC(t *testing.T) (ping.PingUC, *mocks.MockPingRepo, *mocks.MockPingGW, *mocks.MockNotificationDelivery) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPingRepo(ctrl)
	gw := mocks.NewMockPingGW(ctrl)
	delivery := mocks.NewMockNotificationDelivery(ctrl)

	uc := NewPingUC(pingConfig(), repo, gw, delivery)
	return uc, repo, gw, delivery
}

func activePing(toUserID, orderID string) *models.Ping {
	now := models.Now()
	return &models.Ping{
		OrderID:    orderID,
		FromUserID: "staff-1",
		ToUserID:   toUserID,
		Message:    "Your order is ready for pickup",
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * time.Second),
		IsActive:   true,
	}
}

func TestPublish(t *testing.T) {
	uc, repo, gw, _ := newPingUC(t)

	var stored *models.Ping
	repo.EXPECT().StorePing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.Ping) error {
			stored = record
			return nil
		})
	gw.EXPECT().PublishPingCreated(gomock.Any(), gomock.Any()).Return(nil)

	record, err := uc.Publish(context.Background(), "order-1", "staff-1", "customer-1", "Order up")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, stored, record)
	assert.Equal(t, "order-1", record.OrderID)
	assert.Equal(t, "customer-1", record.ToUserID)
	assert.True(t, record.IsActive)
	assert.Equal(t, 30*time.Second, record.ExpiresAt.Sub(record.CreatedAt))
}

func TestPublishRequiresOrderAndRecipient(t *testing.T) {
	uc, _, _, _ := newPingUC(t)

	_, err := uc.Publish(context.Background(), "", "staff-1", "customer-1", "hi")
	assert.Error(t, err)

	_, err = uc.Publish(context.Background(), "order-1", "staff-1", "", "hi")
	assert.Error(t, err)
}

func TestPublishStoreFailure(t *testing.T) {
	uc, repo, _, _ := newPingUC(t)

	repo.EXPECT().StorePing(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := uc.Publish(context.Background(), "order-1", "staff-1", "customer-1", "hi")
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	uc, repo, gw, _ := newPingUC(t)

	repo.EXPECT().DeletePing(gomock.Any(), "customer-1", "order-1").Return(nil)
	gw.EXPECT().PublishPingCleared(gomock.Any(), "customer-1", "order-1").Return(nil)

	err := uc.Clear(context.Background(), "customer-1", "order-1")
	assert.NoError(t, err)
}

func TestSubscribeReplaysStoredPing(t *testing.T) {
	uc, repo, _, delivery := newPingUC(t)

	record := activePing("customer-1", "order-1")
	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").Return(record, nil)
	delivery.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.PingDelivery) bool {
			assert.Equal(t, *record, d.Ping)
			assert.Equal(t, "order_ready", d.Sound)
			assert.Equal(t, []string{"notification_success"}, d.Haptics)
			return true
		}).Times(1)

	err := uc.Subscribe(context.Background(), "customer-1", "order-1")
	assert.NoError(t, err)
}

func TestSubscribeWithNothingStored(t *testing.T) {
	uc, repo, _, _ := newPingUC(t)

	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").
		Return(nil, repository.ErrPingNotFound)

	// No delivery, but the subscription stays armed for a later publish.
	err := uc.Subscribe(context.Background(), "customer-1", "order-1")
	assert.NoError(t, err)
}

func TestSubscribeDropsExpiredPing(t *testing.T) {
	uc, repo, _, _ := newPingUC(t)

	record := activePing("customer-1", "order-1")
	record.ExpiresAt = models.Now().Add(-time.Second)
	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").Return(record, nil)

	// Deliver must not be called for an expired record.
	err := uc.Subscribe(context.Background(), "customer-1", "order-1")
	assert.NoError(t, err)
}

func TestHandlePingCreatedDeliversToSubscriber(t *testing.T) {
	uc, repo, _, delivery := newPingUC(t)

	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").
		Return(nil, repository.ErrPingNotFound)
	require.NoError(t, uc.Subscribe(context.Background(), "customer-1", "order-1"))

	delivery.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(true).Times(1)

	err := uc.HandlePingCreated(context.Background(), activePing("customer-1", "order-1"))
	assert.NoError(t, err)
}

func TestHandlePingCreatedSkipsUnsubscribedRecipient(t *testing.T) {
	uc, _, _, _ := newPingUC(t)

	err := uc.HandlePingCreated(context.Background(), activePing("customer-1", "order-1"))
	assert.NoError(t, err)
}

func TestResubscribeDetachesPreviousOrder(t *testing.T) {
	uc, repo, _, delivery := newPingUC(t)

	repo.EXPECT().GetPing(gomock.Any(), "customer-1", gomock.Any()).
		Return(nil, repository.ErrPingNotFound).Times(2)

	require.NoError(t, uc.Subscribe(context.Background(), "customer-1", "order-1"))
	require.NoError(t, uc.Subscribe(context.Background(), "customer-1", "order-2"))

	// A ping for the superseded order must not fire; only the current
	// slot delivers, exactly once.
	delivery.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.PingDelivery) bool {
			assert.Equal(t, "order-2", d.Ping.OrderID)
			return true
		}).Times(1)

	require.NoError(t, uc.HandlePingCreated(context.Background(), activePing("customer-1", "order-1")))
	require.NoError(t, uc.HandlePingCreated(context.Background(), activePing("customer-1", "order-2")))
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	uc, repo, _, _ := newPingUC(t)

	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").
		Return(nil, repository.ErrPingNotFound)
	require.NoError(t, uc.Subscribe(context.Background(), "customer-1", "order-1"))
	require.NoError(t, uc.Unsubscribe(context.Background(), "customer-1"))

	err := uc.HandlePingCreated(context.Background(), activePing("customer-1", "order-1"))
	assert.NoError(t, err)
}

func TestHandlePingCreatedDropsExpired(t *testing.T) {
	uc, repo, _, _ := newPingUC(t)

	repo.EXPECT().GetPing(gomock.Any(), "customer-1", "order-1").
		Return(nil, repository.ErrPingNotFound)
	require.NoError(t, uc.Subscribe(context.Background(), "customer-1", "order-1"))

	record := activePing("customer-1", "order-1")
	record.ExpiresAt = models.Now().Add(-time.Minute)

	err := uc.HandlePingCreated(context.Background(), record)
	assert.NoError(t, err)
}

func TestHandlePingCleared(t *testing.T) {
	uc, _, _, delivery := newPingUC(t)

	delivery.EXPECT().DeliverCleared(gomock.Any(), "customer-1", "order-1").Return(true)

	err := uc.HandlePingCleared(context.Background(), "customer-1", "order-1")
	assert.NoError(t, err)
}
