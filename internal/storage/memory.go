package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"studio-api/internal/models"
)

// InMemoryStore keeps everything in maps. It backs tests and local
// development without a MySQL instance.
type InMemoryStore struct {
	mutex sync.RWMutex

	bookings     map[int64]*models.Booking
	messages     map[int64]*models.ContactMessage
	offers       map[int64]*models.Offer
	portfolio    map[int64]*models.PortfolioItem
	testimonials map[int64]*models.Testimonial
	users        map[int64]*models.User

	nextBookingID     int64
	nextMessageID     int64
	nextOfferID       int64
	nextPortfolioID   int64
	nextTestimonialID int64
	nextUserID        int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		bookings:          make(map[int64]*models.Booking),
		messages:          make(map[int64]*models.ContactMessage),
		offers:            make(map[int64]*models.Offer),
		portfolio:         make(map[int64]*models.PortfolioItem),
		testimonials:      make(map[int64]*models.Testimonial),
		users:             make(map[int64]*models.User),
		nextBookingID:     1,
		nextMessageID:     1,
		nextOfferID:       1,
		nextPortfolioID:   1,
		nextTestimonialID: 1,
		nextUserID:        1,
	}
}

// --- Bookings ---

func (s *InMemoryStore) SaveBooking(ctx context.Context, booking *models.Booking) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	clone := *booking
	s.bookings[booking.ID] = &clone
	return nil
}

func (s *InMemoryStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	booking, exists := s.bookings[id]
	if !exists {
		return nil, ErrNotFound
	}
	clone := *booking
	return &clone, nil
}

func (s *InMemoryStore) ListBookings(ctx context.Context, opts models.BookingListOptions) ([]*models.Booking, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var bookings []*models.Booking
	for _, booking := range s.bookings {
		if opts.Status != "" && booking.Status != opts.Status {
			continue
		}
		clone := *booking
		bookings = append(bookings, &clone)
	}

	field := opts.SortField
	if !models.BookingSortFields[field] {
		field = "created_at"
	}
	sort.Slice(bookings, func(i, j int) bool {
		less := bookingLess(bookings[i], bookings[j], field)
		if opts.SortAscending {
			return less
		}
		return !less
	})
	return bookings, nil
}

func bookingLess(a, b *models.Booking, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "first_name":
		return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
	case "last_name":
		return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
	case "service_type":
		return a.ServiceType < b.ServiceType
	case "event_date":
		// Bookings without an event date sort first, like SQL NULLs.
		if a.EventDate == nil || b.EventDate == nil {
			return a.EventDate == nil && b.EventDate != nil
		}
		return a.EventDate.Before(*b.EventDate)
	case "budget":
		return a.Budget < b.Budget
	case "status":
		return a.Status < b.Status
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (s *InMemoryStore) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	booking, exists := s.bookings[id]
	if !exists {
		return nil, ErrNotFound
	}
	booking.Status = status
	clone := *booking
	return &clone, nil
}

// --- Contact messages ---

func (s *InMemoryStore) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	msg.ID = s.nextMessageID
	s.nextMessageID++
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	clone := *msg
	s.messages[msg.ID] = &clone
	return nil
}

func (s *InMemoryStore) GetContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	msg, exists := s.messages[id]
	if !exists {
		return nil, ErrNotFound
	}
	clone := *msg
	return &clone, nil
}

func (s *InMemoryStore) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var messages []*models.ContactMessage
	for _, msg := range s.messages {
		clone := *msg
		messages = append(messages, &clone)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *InMemoryStore) UpdateContactMessageRead(ctx context.Context, id int64, isRead bool) (*models.ContactMessage, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	msg, exists := s.messages[id]
	if !exists {
		return nil, ErrNotFound
	}
	msg.IsRead = isRead
	clone := *msg
	return &clone, nil
}

func (s *InMemoryStore) DeleteContactMessage(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.messages[id]; !exists {
		return ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

func (s *InMemoryStore) MarkAllContactMessagesRead(ctx context.Context) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var affected int64
	for _, msg := range s.messages {
		if !msg.IsRead {
			msg.IsRead = true
			affected++
		}
	}
	return affected, nil
}

// --- Offers ---

func (s *InMemoryStore) ListOffers(ctx context.Context, activeOnly bool) ([]*models.Offer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var offers []*models.Offer
	for _, offer := range s.offers {
		if activeOnly && !offer.IsActive {
			continue
		}
		clone := *offer
		offers = append(offers, &clone)
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
	return offers, nil
}

func (s *InMemoryStore) SaveOffer(ctx context.Context, offer *models.Offer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	offer.ID = s.nextOfferID
	s.nextOfferID++
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}
	clone := *offer
	s.offers[offer.ID] = &clone
	return nil
}

func (s *InMemoryStore) UpdateOffer(ctx context.Context, offer *models.Offer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, exists := s.offers[offer.ID]
	if !exists {
		return ErrNotFound
	}
	offer.CreatedAt = existing.CreatedAt
	clone := *offer
	s.offers[offer.ID] = &clone
	return nil
}

func (s *InMemoryStore) DeleteOffer(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.offers[id]; !exists {
		return ErrNotFound
	}
	delete(s.offers, id)
	return nil
}

// --- Portfolio ---

func (s *InMemoryStore) ListPortfolioItems(ctx context.Context, opts models.PortfolioListOptions) ([]*models.PortfolioItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var items []*models.PortfolioItem
	for _, item := range s.portfolio {
		if opts.Category != "" && item.Category != opts.Category {
			continue
		}
		if opts.Featured && !item.Featured {
			continue
		}
		clone := *item
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *InMemoryStore) SavePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	item.ID = s.nextPortfolioID
	s.nextPortfolioID++
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	clone := *item
	s.portfolio[item.ID] = &clone
	return nil
}

func (s *InMemoryStore) UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, exists := s.portfolio[item.ID]
	if !exists {
		return ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	clone := *item
	s.portfolio[item.ID] = &clone
	return nil
}

func (s *InMemoryStore) DeletePortfolioItem(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.portfolio[id]; !exists {
		return ErrNotFound
	}
	delete(s.portfolio, id)
	return nil
}

// --- Testimonials ---

func (s *InMemoryStore) ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var testimonials []*models.Testimonial
	for _, testimonial := range s.testimonials {
		if activeOnly && !testimonial.IsActive {
			continue
		}
		clone := *testimonial
		testimonials = append(testimonials, &clone)
	}
	sort.Slice(testimonials, func(i, j int) bool {
		return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt)
	})
	return testimonials, nil
}

func (s *InMemoryStore) SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	testimonial.ID = s.nextTestimonialID
	s.nextTestimonialID++
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}
	clone := *testimonial
	s.testimonials[testimonial.ID] = &clone
	return nil
}

func (s *InMemoryStore) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, exists := s.testimonials[testimonial.ID]
	if !exists {
		return ErrNotFound
	}
	testimonial.CreatedAt = existing.CreatedAt
	clone := *testimonial
	s.testimonials[testimonial.ID] = &clone
	return nil
}

func (s *InMemoryStore) DeleteTestimonial(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.testimonials[id]; !exists {
		return ErrNotFound
	}
	delete(s.testimonials, id)
	return nil
}

// --- Users ---

func (s *InMemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) SaveUser(ctx context.Context, user *models.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %s already exists", user.Username)
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}
