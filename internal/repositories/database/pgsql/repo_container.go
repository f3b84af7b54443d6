package pgsql

import (
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		CashbookRepo:     newPgxCashbookRepository(dbPool),
		StaffRepo:        newPgxStaffRepository(dbPool),
		EntryRepo:        newPgxEntryRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
