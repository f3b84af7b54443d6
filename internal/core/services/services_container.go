package services

import (
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, channels ...portssvc.NotificationChannel) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Cashbook service first; it authorizes everything that touches a cashbook
	container.Cashbook = NewCashbookService(repos.CashbookRepo, repos.StaffRepo, repos.EntryRepo, repos.UserRepo)
	authorizer := container.Cashbook.(portssvc.CashbookAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.UserRepo)
	container.Staff = NewStaffService(repos.StaffRepo, repos.CashbookRepo, repos.UserRepo)
	container.Notification = NewNotificationService(
		repos.NotificationRepo,
		repos.UserRepo,
		WithNotificationChannels(channels...),
	)
	container.Entry = NewEntryService(
		repos.EntryRepo,
		WithEntryCashbookAuthorizer(authorizer),
		WithEntryNotifier(container.Notification),
	)
	container.Export = NewExportService(repos.EntryRepo, authorizer)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.UserRepo)

	return container
}
