package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/models"
)

type MySQLStore struct {
	db  *bun.DB
	log *logger.Logger
}

func NewMySQLStore(cfg config.DatabaseConfig, log *logger.Logger) (*MySQLStore, error) {
	log.LogDatabase("CONNECT", "mysql", fmt.Sprintf("Connecting to MySQL at %s:%s", cfg.Host, cfg.Port))

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	sqldb, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Error("DATABASE", "Failed to open MySQL connection: "+err.Error())
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		log.Error("DATABASE", "Failed to ping MySQL: "+err.Error())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &MySQLStore{
		db:  bun.NewDB(sqldb, mysqldialect.New()),
		log: log,
	}

	if err := store.initTables(); err != nil {
		log.Error("DATABASE", "Failed to initialize tables: "+err.Error())
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.LogDatabase("SUCCESS", "mysql", "MySQL connection established and tables initialized")
	return store, nil
}

func (s *MySQLStore) initTables() error {
	ctx := context.Background()
	tables := []interface{}{
		(*models.Booking)(nil),
		(*models.ContactMessage)(nil),
		(*models.Offer)(nil),
		(*models.PortfolioItem)(nil),
		(*models.Testimonial)(nil),
		(*models.User)(nil),
	}
	for _, model := range tables {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	s.log.LogDatabase("MIGRATE", "mysql", "All tables ready")
	return nil
}

func (s *MySQLStore) Close() error {
	s.log.LogDatabase("CLOSE", "mysql", "Closing MySQL connection")
	return s.db.Close()
}

func (s *MySQLStore) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Bookings ---

func (s *MySQLStore) SaveBooking(ctx context.Context, booking *models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(booking).Exec(ctx); err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to save booking: %s", err.Error()))
		return fmt.Errorf("failed to save booking: %w", err)
	}
	s.log.LogDatabase("INSERT", "bookings", fmt.Sprintf("Booking %d saved", booking.ID))
	return nil
}

func (s *MySQLStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	booking := new(models.Booking)
	err := s.db.NewSelect().Model(booking).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.LogDatabase("NOT_FOUND", "bookings", fmt.Sprintf("Booking %d not found", id))
			return nil, ErrNotFound
		}
		s.log.Error("DATABASE", fmt.Sprintf("Failed to get booking %d: %s", id, err.Error()))
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *MySQLStore) ListBookings(ctx context.Context, opts models.BookingListOptions) ([]*models.Booking, error) {
	var bookings []*models.Booking

	query := s.db.NewSelect().Model(&bookings)
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	field := opts.SortField
	if !models.BookingSortFields[field] {
		field = "created_at"
	}
	direction := "DESC"
	if opts.SortAscending {
		direction = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", field, direction))

	if err := query.Scan(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to list bookings: "+err.Error())
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	s.log.LogDatabase("SELECT", "bookings", fmt.Sprintf("Listed %d bookings", len(bookings)))
	return bookings, nil
}

func (s *MySQLStore) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Status = status
	if _, err := s.db.NewUpdate().Model(booking).Column("status").WherePK().Exec(ctx); err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update booking %d: %s", id, err.Error()))
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	s.log.LogDatabase("UPDATE", "bookings", fmt.Sprintf("Booking %d status set to %s", id, status))
	return booking, nil
}

// --- Contact messages ---

func (s *MySQLStore) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(msg).Exec(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to save contact message: "+err.Error())
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	s.log.LogDatabase("INSERT", "contact_messages", fmt.Sprintf("Message %d saved", msg.ID))
	return nil
}

func (s *MySQLStore) GetContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error) {
	msg := new(models.ContactMessage)
	err := s.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("DATABASE", fmt.Sprintf("Failed to get message %d: %s", id, err.Error()))
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return msg, nil
}

func (s *MySQLStore) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := s.db.NewSelect().Model(&messages).Order("created_at DESC").Scan(ctx)
	if err != nil {
		s.log.Error("DATABASE", "Failed to list contact messages: "+err.Error())
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	s.log.LogDatabase("SELECT", "contact_messages", fmt.Sprintf("Listed %d messages", len(messages)))
	return messages, nil
}

func (s *MySQLStore) UpdateContactMessageRead(ctx context.Context, id int64, isRead bool) (*models.ContactMessage, error) {
	msg, err := s.GetContactMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	msg.IsRead = isRead
	if _, err := s.db.NewUpdate().Model(msg).Column("is_read").WherePK().Exec(ctx); err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update message %d: %s", id, err.Error()))
		return nil, fmt.Errorf("failed to update read status: %w", err)
	}
	s.log.LogDatabase("UPDATE", "contact_messages", fmt.Sprintf("Message %d read=%v", id, isRead))
	return msg, nil
}

func (s *MySQLStore) DeleteContactMessage(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().Model((*models.ContactMessage)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to delete message %d: %s", id, err.Error()))
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.log.LogDatabase("DELETE", "contact_messages", fmt.Sprintf("Message %d deleted", id))
	return nil
}

func (s *MySQLStore) MarkAllContactMessagesRead(ctx context.Context) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*models.ContactMessage)(nil)).
		Set("is_read = ?", true).
		Where("is_read = ?", false).
		Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", "Failed to mark all messages read: "+err.Error())
		return 0, fmt.Errorf("failed to mark all messages read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to mark all messages read: %w", err)
	}
	s.log.LogDatabase("UPDATE", "contact_messages", fmt.Sprintf("Marked %d messages read", affected))
	return affected, nil
}

// --- Offers ---

func (s *MySQLStore) ListOffers(ctx context.Context, activeOnly bool) ([]*models.Offer, error) {
	var offers []*models.Offer
	query := s.db.NewSelect().Model(&offers).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Scan(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to list offers: "+err.Error())
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *MySQLStore) SaveOffer(ctx context.Context, offer *models.Offer) error {
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(offer).Exec(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to save offer: "+err.Error())
		return fmt.Errorf("failed to save offer: %w", err)
	}
	s.log.LogDatabase("INSERT", "offers", fmt.Sprintf("Offer %d saved", offer.ID))
	return nil
}

func (s *MySQLStore) UpdateOffer(ctx context.Context, offer *models.Offer) error {
	res, err := s.db.NewUpdate().Model(offer).WherePK().ExcludeColumn("created_at").Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update offer %d: %s", offer.ID, err.Error()))
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		exists, existsErr := s.db.NewSelect().Model((*models.Offer)(nil)).Where("id = ?", offer.ID).Exists(ctx)
		if existsErr != nil {
			return fmt.Errorf("failed to update offer: %w", existsErr)
		}
		if !exists {
			return ErrNotFound
		}
	}
	s.log.LogDatabase("UPDATE", "offers", fmt.Sprintf("Offer %d updated", offer.ID))
	return nil
}

func (s *MySQLStore) DeleteOffer(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, (*models.Offer)(nil), "offers", id)
}

// --- Portfolio ---

func (s *MySQLStore) ListPortfolioItems(ctx context.Context, opts models.PortfolioListOptions) ([]*models.PortfolioItem, error) {
	var items []*models.PortfolioItem
	query := s.db.NewSelect().Model(&items).Order("created_at DESC")
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.Featured {
		query = query.Where("featured = ?", true)
	}
	if err := query.Scan(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to list portfolio items: "+err.Error())
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

func (s *MySQLStore) SavePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(item).Exec(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to save portfolio item: "+err.Error())
		return fmt.Errorf("failed to save portfolio item: %w", err)
	}
	s.log.LogDatabase("INSERT", "portfolio_items", fmt.Sprintf("Item %d saved", item.ID))
	return nil
}

func (s *MySQLStore) UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	res, err := s.db.NewUpdate().Model(item).WherePK().ExcludeColumn("created_at").Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update portfolio item %d: %s", item.ID, err.Error()))
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		exists, existsErr := s.db.NewSelect().Model((*models.PortfolioItem)(nil)).Where("id = ?", item.ID).Exists(ctx)
		if existsErr != nil {
			return fmt.Errorf("failed to update portfolio item: %w", existsErr)
		}
		if !exists {
			return ErrNotFound
		}
	}
	s.log.LogDatabase("UPDATE", "portfolio_items", fmt.Sprintf("Item %d updated", item.ID))
	return nil
}

func (s *MySQLStore) DeletePortfolioItem(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, (*models.PortfolioItem)(nil), "portfolio_items", id)
}

// --- Testimonials ---

func (s *MySQLStore) ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	query := s.db.NewSelect().Model(&testimonials).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Scan(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to list testimonials: "+err.Error())
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *MySQLStore) SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(testimonial).Exec(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to save testimonial: "+err.Error())
		return fmt.Errorf("failed to save testimonial: %w", err)
	}
	s.log.LogDatabase("INSERT", "testimonials", fmt.Sprintf("Testimonial %d saved", testimonial.ID))
	return nil
}

func (s *MySQLStore) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	res, err := s.db.NewUpdate().Model(testimonial).WherePK().ExcludeColumn("created_at").Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update testimonial %d: %s", testimonial.ID, err.Error()))
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		exists, existsErr := s.db.NewSelect().Model((*models.Testimonial)(nil)).Where("id = ?", testimonial.ID).Exists(ctx)
		if existsErr != nil {
			return fmt.Errorf("failed to update testimonial: %w", existsErr)
		}
		if !exists {
			return ErrNotFound
		}
	}
	s.log.LogDatabase("UPDATE", "testimonials", fmt.Sprintf("Testimonial %d updated", testimonial.ID))
	return nil
}

func (s *MySQLStore) DeleteTestimonial(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, (*models.Testimonial)(nil), "testimonials", id)
}

// --- Users ---

func (s *MySQLStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := s.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("DATABASE", fmt.Sprintf("Failed to get user %s: %s", username, err.Error()))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *MySQLStore) SaveUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		s.log.Error("DATABASE", "Failed to save user: "+err.Error())
		return fmt.Errorf("failed to save user: %w", err)
	}
	s.log.LogDatabase("INSERT", "users", fmt.Sprintf("User %s saved", user.Username))
	return nil
}

// deleteByID removes a row by primary key and reports ErrNotFound when
// nothing was deleted.
func (s *MySQLStore) deleteByID(ctx context.Context, model interface{}, table string, id int64) error {
	res, err := s.db.NewDelete().Model(model).Where("id = ?", id).Exec(ctx)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to delete from %s: %s", table, err.Error()))
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.log.LogDatabase("DELETE", table, fmt.Sprintf("Row %d deleted", id))
	return nil
}
