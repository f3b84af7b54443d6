package domain

// Permissions is what an actor may do with a single cashbook.
type Permissions struct {
	CanView    bool `json:"canView"`
	CanEdit    bool `json:"canEdit"`
	CanArchive bool `json:"canArchive"`
	CanDelete  bool `json:"canDelete"`
	CanCreate  bool `json:"canCreate"`
	CanPost    bool `json:"canPost"`
}

// EvaluatePermissions computes the permissions of actor on cb.
//
// Owners get every right. A non-owner with no staff record on the cashbook gets
// nothing apart from the global create flag. A staff member inherits edit and
// archive from the staff record and only sees cashbooks that are active and not
// deleted. Posting always requires an active, live cashbook plus edit rights.
//
// cb may be nil when only CanCreate is of interest.
func EvaluatePermissions(actor User, cb *Cashbook, staff *CashbookStaff) Permissions {
	var p Permissions
	switch {
	case actor.IsOwner():
		p = Permissions{CanView: true, CanEdit: true, CanArchive: true, CanDelete: true, CanCreate: true}
	case staff == nil || cb == nil || staff.UserID != actor.UserID || staff.CashbookID != cb.CashbookID:
		p = Permissions{CanCreate: actor.CanCreateCashbooks}
	default:
		p = Permissions{
			CanView:    !cb.IsDeleted && cb.Status == CashbookActive,
			CanEdit:    staff.CanEdit,
			CanArchive: staff.CanArchive,
			CanCreate:  actor.CanCreateCashbooks,
		}
	}
	if cb != nil {
		// recycle-bin cashbooks are read only, even for the owner
		p.CanPost = cb.Status == CashbookActive && !cb.IsDeleted && p.CanEdit
	}
	return p
}
