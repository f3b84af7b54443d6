package dto

import "github.com/designerabdulhai/hhdcashfinal/internal/core/domain"

// AssignStaffRequest grants a user access to a cashbook. Role defaults to EMPLOYEE.
type AssignStaffRequest struct {
	UserID string          `json:"userID" binding:"required"`
	Role   domain.UserRole `json:"role" binding:"omitempty,oneof=MANAGER EMPLOYEE VIEWER"`
}

// UpdateStaffPermissionsRequest changes the per-cashbook rights of a staff member.
type UpdateStaffPermissionsRequest struct {
	CanEdit    *bool            `json:"canEdit"`
	CanArchive *bool            `json:"canArchive"`
	Role       *domain.UserRole `json:"role" binding:"omitempty,oneof=MANAGER EMPLOYEE VIEWER"`
}

type StaffResponse struct {
	StaffID    string          `json:"staffID"`
	CashbookID string          `json:"cashbookID"`
	UserID     string          `json:"userID"`
	FullName   string          `json:"fullName,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Role       domain.UserRole `json:"role"`
	CanEdit    bool            `json:"canEdit"`
	CanArchive bool            `json:"canArchive"`
}

func ToStaffResponse(s *domain.CashbookStaff) StaffResponse {
	return StaffResponse{
		StaffID:    s.StaffID,
		CashbookID: s.CashbookID,
		UserID:     s.UserID,
		Role:       s.Role,
		CanEdit:    s.CanEdit,
		CanArchive: s.CanArchive,
	}
}

type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

func ToListStaffResponse(members []domain.CashbookStaffMember) ListStaffResponse {
	list := make([]StaffResponse, len(members))
	for i := range members {
		resp := ToStaffResponse(&members[i].CashbookStaff)
		resp.FullName = members[i].FullName
		resp.Phone = members[i].Phone
		list[i] = resp
	}
	return ListStaffResponse{Staff: list}
}
