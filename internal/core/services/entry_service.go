package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultEntryPageSize = 50

type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	notifier  portssvc.NotificationSvc
	now       func() time.Time
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryService)

// WithEntryCashbookAuthorizer sets the authorizer used to gate every entry operation.
func WithEntryCashbookAuthorizer(authorizer portssvc.CashbookAuthorizerSvc) EntryServiceOption {
	return func(s *entryService) {
		s.CashbookAuthorizer = authorizer
	}
}

// WithEntryNotifier sets the service told about entries posted by non-owners.
func WithEntryNotifier(notifier portssvc.NotificationSvc) EntryServiceOption {
	return func(s *entryService) {
		s.notifier = notifier
	}
}

func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, options ...EntryServiceOption) portssvc.EntrySvc {
	svc := &entryService{
		entryRepo: entryRepo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvc = (*entryService)(nil)

func (s *entryService) ListEntries(ctx context.Context, cashbookID string, requestingUserID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if _, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	var cursor *domain.EntryCursor
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, entryID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid nextToken")
		}
		cursor = &domain.EntryCursor{CreatedAt: createdAt, EntryID: entryID}
	}

	// one extra row tells whether another page exists
	entries, err := s.entryRepo.FindEntriesByCashbook(ctx, cashbookID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("cashbook_id", cashbookID))
		return nil, err
	}

	resp := &dto.ListEntriesResponse{}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		resp.NextToken = &token
	}
	resp.Entries = dto.ToEntryResponses(entries)
	return resp, nil
}

func (s *entryService) CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest, requestingUserID string) (*domain.Entry, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	if !access.Permissions.CanPost {
		return nil, apperrors.NewForbiddenError("you cannot post entries to this cashbook")
	}

	now := s.now()
	entry := domain.Entry{
		EntryID:       uuid.NewString(),
		CashbookID:    cashbookID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		PaymentMethod: req.PaymentMethod,
		CreatedBy:     requestingUserID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if entry.PaymentMethod == "" {
		entry.PaymentMethod = domain.PaymentCash
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry posted",
		slog.String("cashbook_id", cashbookID),
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)))

	if s.notifier != nil && !access.Actor.IsOwner() {
		if err := s.notifier.NotifyEntryPosted(ctx, access.Cashbook, entry, access.Actor); err != nil {
			s.LogError(ctx, err, "Failed to notify owner about entry", slog.String("entry_id", entry.EntryID))
		}
	}
	return &entry, nil
}

func validateEntry(entry domain.Entry) error {
	if !entry.Type.IsValid() {
		return apperrors.NewValidationFailedError("invalid entry type " + string(entry.Type))
	}
	if !entry.PaymentMethod.IsValid() {
		return apperrors.NewValidationFailedError("invalid payment method " + string(entry.PaymentMethod))
	}
	if !entry.ValidateAmount() {
		return apperrors.NewValidationFailedError("amount must be greater than zero for IN and OUT entries")
	}
	return nil
}

// editableEntry authorizes an edit and loads the entry.
func (s *entryService) editableEntry(ctx context.Context, cashbookID, entryID, requestingUserID string) (*domain.CashbookAccess, *domain.Entry, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, nil, err
	}
	if !access.Permissions.CanEdit || access.Cashbook.IsDeleted {
		return nil, nil, apperrors.NewForbiddenError("you cannot edit entries of this cashbook")
	}
	entry, err := s.entryRepo.FindEntryByID(ctx, cashbookID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("entry not found")
		}
		return nil, nil, err
	}
	return access, entry, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, cashbookID, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.Entry, error) {
	_, entry, err := s.editableEntry(ctx, cashbookID, entryID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		entry.Type = *req.Type
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Description != nil {
		entry.Description = strings.TrimSpace(*req.Description)
	}
	if req.PaymentMethod != nil {
		entry.PaymentMethod = *req.PaymentMethod
	}
	if err := validateEntry(*entry); err != nil {
		return nil, err
	}
	entry.UpdatedAt = s.now()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Entry updated", slog.String("cashbook_id", cashbookID), slog.String("entry_id", entryID))
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) error {
	if _, _, err := s.editableEntry(ctx, cashbookID, entryID, requestingUserID); err != nil {
		return err
	}
	if err := s.entryRepo.DeleteEntry(ctx, cashbookID, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("cashbook_id", cashbookID), slog.String("entry_id", entryID))
	return nil
}

func (s *entryService) VerifyEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) (*domain.Entry, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	if !access.Actor.IsOwner() {
		return nil, apperrors.NewForbiddenError("only the owner can verify entries")
	}
	entry, err := s.entryRepo.FindEntryByID(ctx, cashbookID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("entry not found")
		}
		return nil, err
	}
	if entry.IsVerified {
		return entry, nil
	}

	now := s.now()
	if err := s.entryRepo.MarkEntryVerified(ctx, cashbookID, entryID, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to verify entry", slog.String("entry_id", entryID))
		return nil, err
	}
	entry.IsVerified = true
	entry.VerifiedBy = &requestingUserID
	entry.UpdatedAt = now
	return entry, nil
}

func (s *entryService) GetBalance(ctx context.Context, cashbookID string, requestingUserID string) (domain.Balance, error) {
	if _, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID); err != nil {
		return domain.Balance{}, err
	}
	balance, err := s.entryRepo.GetBalance(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("cashbook_id", cashbookID))
		return domain.Balance{}, err
	}
	return balance, nil
}
