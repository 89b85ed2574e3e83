package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	artisanRepo "hirafic/database/repository/artisan"
	bookingRepo "hirafic/database/repository/booking"
	reportRepo "hirafic/database/repository/report"
	"hirafic/models"
	"hirafic/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput is the payload for creating a booking. Exactly one of
// ArtisanID or ArtisanEmail must identify an active artisan.
type CreateInput struct {
	ArtisanID      string
	ArtisanEmail   string
	Title          string
	Details        string
	CompletionDate time.Time
}

// BookingService owns booking records and enforces the legal
// status-transition graph under concurrent access.
type BookingService interface {
	Create(ctx context.Context, client models.Principal, input CreateInput) (*models.Booking, error)
	Transition(ctx context.Context, bookingID, actorID, target string) (*models.Booking, error)
	ListFor(ctx context.Context, principal models.Principal, page models.PageRequest) (*models.Page[models.Booking], error)
	FileReport(ctx context.Context, bookingID, clientID, issue string) (*models.Report, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ArtisanRepo artisanRepo.ArtisanRepository
	ReportRepo  reportRepo.ReportRepository
	Logger      *zap.Logger
}

func (s *DefaultBookingService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// Create opens a Pending booking from the authenticated client against
// an active artisan. RequestDate is fixed here and never mutated.
func (s *DefaultBookingService) Create(ctx context.Context, client models.Principal, input CreateInput) (*models.Booking, error) {
	if !client.IsClient() {
		return nil, utils.NewUnauthorized("User is not a client")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, utils.NewInvalidArgument("title must not be empty")
	}
	if !input.CompletionDate.IsZero() && input.CompletionDate.Before(time.Now().UTC()) {
		return nil, utils.NewInvalidArgument("Completion date cannot be in the past")
	}

	artisan, err := s.lookupArtisan(input)
	if err != nil {
		return nil, err
	}
	if !artisan.Active {
		return nil, utils.NewInvalidArgument("artisan is not accepting bookings")
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:             uuid.New().String(),
		ClientID:       client.ID,
		ArtisanID:      artisan.ID,
		ClientName:     client.Username,
		ArtisanName:    artisan.Name,
		Title:          input.Title,
		Details:        input.Details,
		Status:         models.BookingPending,
		RequestDate:    now,
		CompletionDate: input.CompletionDate,
		CreatedAt:      now,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("clientId", booking.ClientID),
		zap.String("artisanId", booking.ArtisanID),
	)
	return booking, nil
}

func (s *DefaultBookingService) lookupArtisan(input CreateInput) (*models.Artisan, error) {
	var (
		artisan *models.Artisan
		err     error
	)
	switch {
	case input.ArtisanID != "":
		artisan, err = s.ArtisanRepo.GetByID(input.ArtisanID)
	case input.ArtisanEmail != "":
		artisan, err = s.ArtisanRepo.GetByEmail(strings.ToLower(input.ArtisanEmail))
	default:
		return nil, utils.NewInvalidArgument("artisan reference is required")
	}
	if err != nil {
		if errors.Is(err, artisanRepo.ErrNotFound) {
			return nil, utils.NewNotFound("Client or Artisan not found")
		}
		return nil, fmt.Errorf("failed to resolve artisan: %w", err)
	}
	return artisan, nil
}

// Transition applies a status change with compare-and-swap semantics:
// the update only lands if the booking's current status is the legal
// predecessor of target and the actor owns the booking. Of two racing
// calls on the same Pending booking exactly one wins; the loser gets
// InvalidTransition and must re-fetch, never an automatic retry.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID, actorID, target string) (*models.Booking, error) {
	expected, ok := predecessorFor(target)
	if !ok {
		if !models.ValidBookingStatus(target) {
			return nil, utils.NewInvalidArgument("unknown booking action: " + target)
		}
		return nil, utils.NewInvalidTransition("booking cannot transition to " + target)
	}

	// Ownership is checked before the swap so a foreign artisan gets
	// Unauthorized, not InvalidTransition. The actor is a user id (the
	// token subject); bookings reference the artisan record, so the
	// actor is resolved through their record first.
	current, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFound("booking not found")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	actor, err := s.ArtisanRepo.GetByUserID(actorID)
	if err != nil {
		if errors.Is(err, artisanRepo.ErrNotFound) {
			return nil, utils.NewUnauthorized("booking belongs to another artisan")
		}
		return nil, fmt.Errorf("failed to resolve artisan: %w", err)
	}
	if current.ArtisanID != actor.ID {
		return nil, utils.NewUnauthorized("booking belongs to another artisan")
	}

	updated, err := s.Repo.UpdateStatusCAS(ctx, bookingID, expected, target)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStatusMismatch):
			return nil, utils.NewInvalidTransition(
				fmt.Sprintf("booking is not %s", expected))
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, utils.NewNotFound("booking not found")
		default:
			return nil, fmt.Errorf("failed to transition booking: %w", err)
		}
	}

	s.log().Info("booking transitioned",
		zap.String("bookingId", bookingID),
		zap.String("from", expected),
		zap.String("to", target),
	)
	return updated, nil
}

// ListFor pages through the principal's own bookings, most recent
// request first. Clients see bookings they opened; artisans see
// bookings addressed to them.
func (s *DefaultBookingService) ListFor(ctx context.Context, principal models.Principal, page models.PageRequest) (*models.Page[models.Booking], error) {
	field := "clientId"
	ownerID := principal.ID
	if principal.IsArtisan() {
		field = "artisanId"
		// Bookings reference the artisan record, not the user account.
		artisan, err := s.ArtisanRepo.GetByUserID(principal.ID)
		if err != nil {
			if errors.Is(err, artisanRepo.ErrNotFound) {
				return nil, utils.NewNotFound("artisan profile not found")
			}
			return nil, fmt.Errorf("failed to resolve artisan: %w", err)
		}
		ownerID = artisan.ID
	}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.PerPage == 0 {
		page.PerPage = utils.DefaultPerPage
	}

	_, total, err := s.Repo.ListFor(field, ownerID, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	window, err := utils.Paginate(total, page.Page, page.PerPage)
	if err != nil {
		return nil, err
	}

	items := []models.Booking{}
	if total > 0 {
		items, _, err = s.Repo.ListFor(field, ownerID, window.Offset, window.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
	}

	return &models.Page[models.Booking]{
		Items:       items,
		CurrentPage: window.CurrentPage,
		TotalPages:  window.TotalPages,
	}, nil
}

// FileReport appends a complaint to a booking. It is permitted in any
// booking status and never mutates the booking itself.
func (s *DefaultBookingService) FileReport(ctx context.Context, bookingID, clientID, issue string) (*models.Report, error) {
	if strings.TrimSpace(issue) == "" {
		return nil, utils.NewInvalidArgument("issue must not be empty")
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFound("booking not found")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.ClientID != clientID {
		return nil, utils.NewUnauthorized("booking belongs to another client")
	}

	report := &models.Report{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		ClientID:  booking.ClientID,
		ArtisanID: booking.ArtisanID,
		Issue:     issue,
		FiledAt:   time.Now().UTC(),
	}
	if err := s.ReportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to file report: %w", err)
	}

	s.log().Info("report filed",
		zap.String("reportId", report.ID),
		zap.String("bookingId", booking.ID),
	)
	return report, nil
}
