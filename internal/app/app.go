package app

import (
	"context"
	"fmt"

	"github.com/gatewise/visitflow/internal/lifecycle"
	"github.com/gatewise/visitflow/internal/platform/mailer"
	"github.com/gatewise/visitflow/internal/platform/storage"
	"github.com/gatewise/visitflow/internal/repo"
	"github.com/gatewise/visitflow/internal/repo/memory"
	"github.com/gatewise/visitflow/internal/seed"
	"github.com/gatewise/visitflow/internal/service"
	"github.com/gatewise/visitflow/pkg/config"
	"github.com/gatewise/visitflow/pkg/logger"
)

// App is the composition root, built once at process start. Dependencies are
// explicit: the visit service holds the lifecycle coordinator, the
// coordinator holds the notification service and the user directory. Nothing
// reaches another collection through ambient globals.
type App struct {
	Config *config.Config

	Users         repo.UserRepository
	Visits        repo.VisitRepository
	Notifications repo.NotificationRepository

	VisitService        service.VisitService
	NotificationService service.NotificationService
	AuthService         service.AuthService
	Coordinator         *lifecycle.Coordinator
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	var snapshots storage.Snapshots
	if cfg.Storage.InMemory {
		snapshots = storage.NewMemorySnapshots()
	} else {
		fileStore, err := storage.NewFileSnapshots(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("init snapshot storage: %w", err)
		}
		snapshots = fileStore
	}

	users := memory.NewUserRepo()
	visits, err := memory.NewVisitRepo(ctx, snapshots)
	if err != nil {
		return nil, fmt.Errorf("init visit registry: %w", err)
	}
	notifications, err := memory.NewNotificationRepo(ctx, snapshots)
	if err != nil {
		return nil, fmt.Errorf("init notification registry: %w", err)
	}

	notificationService := service.NewNotificationService(notifications)
	coordinator := lifecycle.NewCoordinator(users, notificationService, newMailer(cfg))
	visitService := service.NewVisitService(visits, users, coordinator)

	authService, err := service.NewAuthService(ctx, users, snapshots)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}

	a := &App{
		Config:              cfg,
		Users:               users,
		Visits:              visits,
		Notifications:       notifications,
		VisitService:        visitService,
		NotificationService: notificationService,
		AuthService:         authService,
		Coordinator:         coordinator,
	}

	if cfg.Seed.DemoData {
		if err := seed.Apply(ctx, users, visits, notifications); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return a, nil
}

// Reset wipes every collection and the signed-in session. Tests and the demo
// binary use it instead of deleting snapshot files by hand.
func (a *App) Reset(ctx context.Context) error {
	if err := a.Visits.Reset(ctx); err != nil {
		return fmt.Errorf("reset visits: %w", err)
	}
	if err := a.Notifications.Reset(ctx); err != nil {
		return fmt.Errorf("reset notifications: %w", err)
	}
	if err := a.Users.Reset(ctx); err != nil {
		return fmt.Errorf("reset users: %w", err)
	}
	if err := a.AuthService.Logout(ctx); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	logger.InfoContext(ctx, "All collections reset")
	return nil
}

func newMailer(cfg *config.Config) mailer.Service {
	if cfg.Email.DevMode {
		return mailer.NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.SMTPFromName, cfg.Email.SMTPFrom)
	}
	return mailer.NewSMTPMailer(
		cfg.Email.SMTPHost, cfg.Email.SMTPPort,
		cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass,
		cfg.Email.SMTPUseTLS,
	)
}
