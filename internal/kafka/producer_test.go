package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/logger"
	"studio-api/internal/models"
)

func TestMockModePublishes(t *testing.T) {
	producer, err := NewProducer(nil, true, logger.NewLogger())
	require.NoError(t, err)
	defer producer.Close()

	booking := &models.Booking{
		ID:          1,
		FirstName:   "Amina",
		LastName:    "Odhiambo",
		Email:       "amina@example.com",
		ServiceType: "wedding",
		Budget:      50000,
	}
	assert.NoError(t, producer.PublishBookingCreated(booking))
	assert.NoError(t, producer.PublishBookingStatusChanged(1, models.StatusPending, models.StatusConfirmed))
	assert.NoError(t, producer.PublishContactReceived(&models.ContactMessage{
		ID:      1,
		Name:    "Wanjiru",
		Email:   "wanjiru@example.com",
		Subject: "Inquiry",
	}))
}

func TestMockModeCloseIsSafe(t *testing.T) {
	producer, err := NewProducer(nil, true, logger.NewLogger())
	require.NoError(t, err)
	assert.NoError(t, producer.Close())
}
