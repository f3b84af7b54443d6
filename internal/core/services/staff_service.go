package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/google/uuid"
)

type staffService struct {
	BaseService
	staffRepo    portsrepo.StaffRepositoryFacade
	cashbookRepo portsrepo.CashbookReader
}

func NewStaffService(
	staffRepo portsrepo.StaffRepositoryFacade,
	cashbookRepo portsrepo.CashbookReader,
	users portsrepo.UserReader,
) portssvc.StaffSvc {
	return &staffService{
		BaseService:  BaseService{Users: users},
		staffRepo:    staffRepo,
		cashbookRepo: cashbookRepo,
	}
}

var _ portssvc.StaffSvc = (*staffService)(nil)

// newStaffRecord grants edit rights and carries the user's global archive flag
// over to the cashbook.
func newStaffRecord(cashbookID string, user domain.User, role domain.UserRole) domain.CashbookStaff {
	return domain.CashbookStaff{
		StaffID:    uuid.NewString(),
		CashbookID: cashbookID,
		UserID:     user.UserID,
		Role:       role,
		CanEdit:    true,
		CanArchive: user.CanArchiveCashbooks,
	}
}

// requireLiveCashbook makes sure the cashbook exists and is not in the recycle bin.
func (s *staffService) requireLiveCashbook(ctx context.Context, cashbookID string) error {
	cashbook, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("cashbook not found")
		}
		return err
	}
	if cashbook.IsDeleted {
		return apperrors.NewValidationFailedError("cashbook is in the recycle bin")
	}
	return nil
}

func (s *staffService) ListStaff(ctx context.Context, cashbookID string, requestingUserID string) ([]domain.CashbookStaffMember, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	if _, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("cashbook not found")
		}
		return nil, err
	}
	members, err := s.staffRepo.FindStaffByCashbook(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbook staff", slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	if members == nil {
		return []domain.CashbookStaffMember{}, nil
	}
	return members, nil
}

func (s *staffService) AssignStaff(ctx context.Context, cashbookID string, req dto.AssignStaffRequest, requestingUserID string) (*domain.CashbookStaff, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	if err := s.requireLiveCashbook(ctx, cashbookID); err != nil {
		return nil, err
	}

	user, err := s.Users.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	if user.IsOwner() {
		return nil, apperrors.NewValidationFailedError("the owner already has access to every cashbook")
	}

	role := domain.RoleEmployee
	if req.Role != "" {
		role = req.Role
	}
	staff := newStaffRecord(cashbookID, *user, role)
	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		s.LogError(ctx, err, "Failed to assign staff",
			slog.String("cashbook_id", cashbookID),
			slog.String("user_id", req.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff assigned to cashbook",
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", req.UserID),
		slog.String("role", string(role)))
	return &staff, nil
}

func (s *staffService) UpdateStaffPermissions(ctx context.Context, cashbookID, userID string, req dto.UpdateStaffPermissionsRequest, requestingUserID string) (*domain.CashbookStaff, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.FindStaffRecord(ctx, cashbookID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff assignment not found")
		}
		return nil, err
	}

	if req.CanEdit != nil {
		staff.CanEdit = *req.CanEdit
	}
	if req.CanArchive != nil {
		staff.CanArchive = *req.CanArchive
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		s.LogError(ctx, err, "Failed to update staff permissions",
			slog.String("cashbook_id", cashbookID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff permissions updated",
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", userID),
		slog.Bool("can_edit", staff.CanEdit),
		slog.Bool("can_archive", staff.CanArchive))
	return staff, nil
}

func (s *staffService) RemoveStaff(ctx context.Context, cashbookID, userID string, requestingUserID string) error {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return err
	}
	if err := s.staffRepo.DeleteStaff(ctx, cashbookID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove staff",
				slog.String("cashbook_id", cashbookID),
				slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "Staff removed from cashbook",
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", userID))
	return nil
}

func (s *staffService) ListAssignedCashbooks(ctx context.Context, userID string, requestingUserID string) ([]domain.Cashbook, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	cashbooks, err := s.staffRepo.FindCashbooksByStaffUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assigned cashbooks", slog.String("user_id", userID))
		return nil, err
	}
	if cashbooks == nil {
		return []domain.Cashbook{}, nil
	}
	return cashbooks, nil
}
