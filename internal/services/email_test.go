package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/models"
)

func TestFormatAmount(t *testing.T) {
	cases := map[int]string{
		0:      "0",
		999:    "999",
		1000:   "1,000",
		35000:  "35,000",
		200000: "200,000",
	}
	for amount, expected := range cases {
		assert.Equal(t, expected, formatAmount(amount))
	}
}

func TestDisabledEmailIsANoOp(t *testing.T) {
	svc := NewEmailService(config.EmailConfig{Enabled: false}, config.StudioConfig{
		Name:       "Eugine Ray Studios",
		AdminEmail: "admin@example.com",
	}, logger.NewLogger())

	booking := &models.Booking{
		ID:        1,
		FirstName: "Amina",
		LastName:  "Odhiambo",
		Email:     "amina@example.com",
		Budget:    50000,
	}
	assert.NoError(t, svc.SendBookingConfirmation(booking))
	assert.NoError(t, svc.SendBookingAlert(booking))
	assert.NoError(t, svc.SendContactAlert(&models.ContactMessage{
		Name:    "Wanjiru",
		Email:   "wanjiru@example.com",
		Subject: "Inquiry",
		Message: "A long enough message body",
	}))
}
