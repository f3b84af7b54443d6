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
	"github.com/google/uuid"
)

// cashbookService implements the CashbookSvcFacade interface
type cashbookService struct {
	BaseService
	cashbookRepo portsrepo.CashbookRepositoryFacade
	staffRepo    portsrepo.StaffRepositoryFacade
	entryRepo    portsrepo.EntryReader
	now          func() time.Time
}

// NewCashbookService creates a new cashbook service. It is also the
// CashbookAuthorizerSvc the other services authorize through.
func NewCashbookService(
	cashbookRepo portsrepo.CashbookRepositoryFacade,
	staffRepo portsrepo.StaffRepositoryFacade,
	entryRepo portsrepo.EntryReader,
	users portsrepo.UserReader,
) portssvc.CashbookSvcFacade {
	return &cashbookService{
		BaseService:  BaseService{Users: users},
		cashbookRepo: cashbookRepo,
		staffRepo:    staffRepo,
		entryRepo:    entryRepo,
		now:          time.Now,
	}
}

// Ensure cashbookService implements the CashbookSvcFacade interface
var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

// AuthorizeCashbook evaluates the user's permissions on a cashbook. Cashbooks
// the user cannot view are reported as not found.
func (s *cashbookService) AuthorizeCashbook(ctx context.Context, userID, cashbookID string) (*domain.CashbookAccess, error) {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return nil, err
	}

	cashbook, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("cashbook not found")
		}
		s.LogError(ctx, err, "Failed to load cashbook for authorization", slog.String("cashbook_id", cashbookID))
		return nil, err
	}

	var staff *domain.CashbookStaff
	if !actor.IsOwner() {
		staff, err = s.staffRepo.FindStaffRecord(ctx, cashbookID, userID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load staff record",
				slog.String("cashbook_id", cashbookID),
				slog.String("user_id", userID))
			return nil, err
		}
	}

	perms := domain.EvaluatePermissions(*actor, cashbook, staff)
	if !perms.CanView {
		s.LogDebug(ctx, "User may not view cashbook",
			slog.String("user_id", userID),
			slog.String("cashbook_id", cashbookID))
		return nil, apperrors.NewNotFoundError("cashbook not found")
	}

	return &domain.CashbookAccess{
		Actor:       *actor,
		Cashbook:    *cashbook,
		Staff:       staff,
		Permissions: perms,
	}, nil
}

func (s *cashbookService) ListCashbooks(ctx context.Context, requestingUserID string, filter domain.CashbookFilter) ([]domain.CashbookView, error) {
	actor, err := s.LoadActor(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	views := []domain.CashbookView{}
	if actor.IsOwner() {
		cashbooks, err := s.cashbookRepo.FindCashbooks(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list cashbooks")
			return nil, err
		}
		for i := range cashbooks {
			views = append(views, domain.CashbookView{
				Cashbook:    cashbooks[i],
				Permissions: domain.EvaluatePermissions(*actor, &cashbooks[i], nil),
			})
		}
		return views, nil
	}

	cashbooks, staffByCashbook, err := s.cashbookRepo.FindCashbooksForStaff(ctx, requestingUserID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list staff cashbooks", slog.String("user_id", requestingUserID))
		return nil, err
	}
	for i := range cashbooks {
		staff, ok := staffByCashbook[cashbooks[i].CashbookID]
		if !ok {
			continue
		}
		perms := domain.EvaluatePermissions(*actor, &cashbooks[i], &staff)
		if !perms.CanView {
			continue
		}
		views = append(views, domain.CashbookView{Cashbook: cashbooks[i], Permissions: perms})
	}

	s.LogDebug(ctx, "Cashbooks listed", slog.Int("count", len(views)))
	return views, nil
}

func (s *cashbookService) GetCashbook(ctx context.Context, cashbookID string, requestingUserID string) (*domain.CashbookDetail, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	balance, err := s.entryRepo.GetBalance(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute cashbook balance", slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	return &domain.CashbookDetail{
		CashbookView: domain.CashbookView{Cashbook: access.Cashbook, Permissions: access.Permissions},
		Balance:      balance,
	}, nil
}

func (s *cashbookService) ListDeletedCashbooks(ctx context.Context, requestingUserID string) ([]domain.Cashbook, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	cashbooks, err := s.cashbookRepo.FindDeletedCashbooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recycle bin")
		return nil, err
	}
	if cashbooks == nil {
		return []domain.Cashbook{}, nil
	}
	return cashbooks, nil
}

func (s *cashbookService) CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest, requestingUserID string) (*domain.Cashbook, error) {
	actor, err := s.LoadActor(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !domain.EvaluatePermissions(*actor, nil, nil).CanCreate {
		return nil, apperrors.NewForbiddenError("you are not allowed to create cashbooks")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("cashbook name is required")
	}

	cashbook := domain.Cashbook{
		CashbookID: uuid.NewString(),
		CategoryID: req.CategoryID,
		Name:       name,
		OwnerID:    actor.UserID,
		Status:     domain.CashbookActive,
		CreatedAt:  s.now(),
	}

	staff := make([]domain.CashbookStaff, 0, len(req.StaffUserIDs)+1)
	seen := map[string]bool{}
	if !actor.IsOwner() {
		// a non-owner creator needs a staff record to see the book afterwards
		staff = append(staff, domain.CashbookStaff{
			StaffID:    uuid.NewString(),
			CashbookID: cashbook.CashbookID,
			UserID:     actor.UserID,
			Role:       actor.Role,
			CanEdit:    true,
			CanArchive: actor.CanArchiveCashbooks,
		})
		seen[actor.UserID] = true
	}
	for _, userID := range req.StaffUserIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		member, err := s.Users.FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationFailedError("staff user " + userID + " does not exist")
			}
			return nil, err
		}
		if member.IsOwner() {
			continue
		}
		staff = append(staff, newStaffRecord(cashbook.CashbookID, *member, domain.RoleEmployee))
	}

	if err := s.cashbookRepo.SaveCashbook(ctx, cashbook, staff); err != nil {
		s.LogError(ctx, err, "Failed to save cashbook", slog.String("cashbook_id", cashbook.CashbookID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbook created",
		slog.String("cashbook_id", cashbook.CashbookID),
		slog.String("creator_id", requestingUserID),
		slog.Int("staff_count", len(staff)))
	return &cashbook, nil
}

func (s *cashbookService) UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest, requestingUserID string) (*domain.Cashbook, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	if !access.Permissions.CanEdit {
		return nil, apperrors.NewForbiddenError("you cannot edit this cashbook")
	}
	cashbook := access.Cashbook
	if cashbook.IsDeleted {
		return nil, apperrors.NewValidationFailedError("restore the cashbook before editing it")
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("cashbook name is required")
		}
		if name != cashbook.Name {
			cashbook.Name = name
			updated = true
		}
	}
	if req.CategoryID != nil && *req.CategoryID != cashbook.CategoryID {
		cashbook.CategoryID = *req.CategoryID
		updated = true
	}
	if !updated {
		return &cashbook, nil
	}

	if err := s.cashbookRepo.UpdateCashbook(ctx, cashbook); err != nil {
		s.LogError(ctx, err, "Failed to update cashbook", slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	s.LogInfo(ctx, "Cashbook updated", slog.String("cashbook_id", cashbookID))
	return &cashbook, nil
}

func (s *cashbookService) SetCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus, requestingUserID string) (*domain.Cashbook, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid cashbook status " + string(status))
	}
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	if !access.Permissions.CanArchive {
		return nil, apperrors.NewForbiddenError("you cannot change the status of this cashbook")
	}
	cashbook := access.Cashbook
	if cashbook.IsDeleted {
		return nil, apperrors.NewValidationFailedError("restore the cashbook before changing its status")
	}
	if cashbook.Status == status {
		return &cashbook, nil
	}

	if err := s.cashbookRepo.UpdateCashbookStatus(ctx, cashbookID, status); err != nil {
		s.LogError(ctx, err, "Failed to update cashbook status", slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	cashbook.Status = status
	s.LogInfo(ctx, "Cashbook status changed",
		slog.String("cashbook_id", cashbookID),
		slog.String("status", string(status)))
	return &cashbook, nil
}

func (s *cashbookService) SoftDeleteCashbook(ctx context.Context, cashbookID string, requestingUserID string) error {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return err
	}
	if err := s.cashbookRepo.MarkCashbookDeleted(ctx, cashbookID, s.now(), requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to soft delete cashbook", slog.String("cashbook_id", cashbookID))
		}
		return err
	}
	s.LogInfo(ctx, "Cashbook moved to recycle bin", slog.String("cashbook_id", cashbookID))
	return nil
}

func (s *cashbookService) RestoreCashbook(ctx context.Context, cashbookID string, requestingUserID string) error {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return err
	}
	if err := s.cashbookRepo.RestoreCashbook(ctx, cashbookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to restore cashbook", slog.String("cashbook_id", cashbookID))
		}
		return err
	}
	s.LogInfo(ctx, "Cashbook restored", slog.String("cashbook_id", cashbookID))
	return nil
}
