package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/storage"
)

func newTestBookingService() (*BookingService, *storage.InMemoryStore) {
	log := logger.NewLogger()
	store := storage.NewInMemoryStore()
	email := NewEmailService(config.EmailConfig{Enabled: false}, config.StudioConfig{
		Name:       "Eugine Ray Studios",
		AdminEmail: "admin@example.com",
		Phone:      "+254700000000",
		BaseURL:    "https://example.com",
	}, log)
	return NewBookingService(store, email, nil, nil, log), store
}

func validBookingRequest() *models.BookingRequest {
	eventDate := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	return &models.BookingRequest{
		FirstName:    "Amina",
		LastName:     "Odhiambo",
		Email:        "amina@example.com",
		Phone:        "0712345678",
		ServiceType:  "wedding",
		EventDate:    &eventDate,
		Location:     "Meru",
		Message:      "Full day coverage",
		Budget:       50000,
		AgreeToTerms: true,
	}
}

func TestSubmitBooking(t *testing.T) {
	svc, _ := newTestBookingService()

	booking, err := svc.Submit(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.NotZero(t, booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "Amina", booking.FirstName)
	assert.Equal(t, 50000, booking.Budget)
	assert.False(t, booking.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, stored.ID)
	assert.Equal(t, "wedding", stored.ServiceType)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSubmitBookingCollectsAllValidationErrors(t *testing.T) {
	svc, _ := newTestBookingService()

	_, err := svc.Submit(context.Background(), &models.BookingRequest{})
	require.Error(t, err)

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "firstName")
	assert.Contains(t, verrs, "lastName")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "phone")
	assert.Contains(t, verrs, "serviceType")
	assert.Contains(t, verrs, "budget")
	assert.Contains(t, verrs, "agreeToTerms")
}

func TestSubmitBookingRequiresConsent(t *testing.T) {
	svc, _ := newTestBookingService()

	req := validBookingRequest()
	req.AgreeToTerms = false

	_, err := svc.Submit(context.Background(), req)
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "You must agree to the terms and conditions", verrs["agreeToTerms"])
}

func TestSubmitBookingBudgetBounds(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	for _, budget := range []int{models.MinBudget, models.MaxBudget} {
		req := validBookingRequest()
		req.Budget = budget
		_, err := svc.Submit(ctx, req)
		assert.NoError(t, err, "budget %d should be accepted", budget)
	}

	for _, budget := range []int{models.MinBudget - 1, models.MaxBudget + 1, 0} {
		req := validBookingRequest()
		req.Budget = budget
		_, err := svc.Submit(ctx, req)
		var verrs models.ValidationErrors
		require.ErrorAs(t, err, &verrs, "budget %d should be rejected", budget)
		assert.Contains(t, verrs, "budget")
	}
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	booking, err := svc.Submit(ctx, validBookingRequest())
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, booking.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	// Backwards moves are allowed, the admin corrects mistakes this way.
	updated, err = svc.SetStatus(ctx, booking.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	// Re-applying the current status is a successful no-op.
	updated, err = svc.SetStatus(ctx, booking.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestSetStatusInvalid(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	booking, err := svc.Submit(ctx, validBookingRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, booking.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, 999999, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBookingNotFound(t *testing.T) {
	svc, _ := newTestBookingService()

	_, err := svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBookingsSearch(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	first := validBookingRequest()
	_, err := svc.Submit(ctx, first)
	require.NoError(t, err)

	second := validBookingRequest()
	second.FirstName = "Brian"
	second.LastName = "Kiptoo"
	second.Email = "brian@example.com"
	second.ServiceType = "commercial"
	_, err = svc.Submit(ctx, second)
	require.NoError(t, err)

	// Case-insensitive substring match across the customer fields.
	results, err := svc.List(ctx, models.BookingListOptions{Search: "AMINA"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Amina", results[0].FirstName)

	results, err = svc.List(ctx, models.BookingListOptions{Search: "commercial"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Brian", results[0].FirstName)

	results, err = svc.List(ctx, models.BookingListOptions{Search: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListBookingsStatusFilterAndSort(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	for _, budget := range []int{30000, 10000, 80000} {
		req := validBookingRequest()
		req.Budget = budget
		_, err := svc.Submit(ctx, req)
		require.NoError(t, err)
	}

	confirmed, err := svc.SetStatus(ctx, 1, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	results, err := svc.List(ctx, models.BookingListOptions{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.List(ctx, models.BookingListOptions{SortField: "budget", SortAscending: true})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 10000, results[0].Budget)
	assert.Equal(t, 80000, results[2].Budget)
}
