// Command cashbook_cli is a terminal client that talks to the database directly.
// The signed-in identity is cached in a session file so later commands work
// without logging in again, and keep working read-only when the database is
// unreachable.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
	"github.com/designerabdulhai/hhdcashfinal/internal/repositories/database/pgsql"
	"github.com/designerabdulhai/hhdcashfinal/internal/session"
	"github.com/designerabdulhai/hhdcashfinal/pkg/database"
	"github.com/spf13/pflag"
)

const usage = `usage: cashbook_cli <command> [flags]

commands:
  register   --name --phone --password [--email]
  login      --phone --password
  logout
  whoami
  cashbooks  [--status ACTIVE|COMPLETED]
  report     [--range DAILY|WEEKLY|MONTHLY|YEARLY|CUSTOM] [--start YYYY-MM-DD] [--end YYYY-MM-DD]

global flags:
  --db            PostgreSQL connection URL (overrides PGSQL_URL)
  --session-file  where the signed-in identity is cached
  --log-level     DEBUG, INFO, WARN or ERROR
`

type cli struct {
	out      io.Writer
	session  *session.Session
	services *portssvc.ServiceContainer
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	flags := pflag.NewFlagSet(command, pflag.ContinueOnError)
	flags.String("db", "", "PostgreSQL connection URL")
	flags.String("session-file", "", "session cache file")
	flags.String("log-level", "", "log level")
	name := flags.String("name", "", "full name")
	phone := flags.String("phone", "", "phone number")
	password := flags.String("password", "", "password")
	email := flags.String("email", "", "e-mail address")
	status := flags.String("status", "", "cashbook status filter")
	rangeName := flags.String("range", string(domain.ReportWeekly), "report period")
	start := flags.String("start", "", "custom range start")
	end := flags.String("end", "", "custom range end")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx := middleware.WithLogger(context.Background(), logger)

	// the pool is created without a ping so an unreachable database degrades to the cached identity
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, false)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
	c := &cli{
		out:      os.Stdout,
		session:  session.New(container.User, session.NewFileStore(cfg.SessionFile), logger),
		services: container,
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	switch command {
	case "register":
		req := dto.RegisterRequest{FullName: *name, Phone: *phone, Password: *password}
		if *email != "" {
			req.Email = email
		}
		return c.register(ctx, req)
	case "login":
		return c.login(ctx, *phone, *password)
	case "logout":
		return c.session.Logout()
	case "whoami":
		return c.whoami(ctx)
	case "cashbooks":
		return c.cashbooks(ctx, *status)
	case "report":
		return c.report(ctx, *rangeName, *start, *end)
	}
	return fmt.Errorf("unknown command %q\n\n%s", command, usage)
}

func (c *cli) register(ctx context.Context, req dto.RegisterRequest) error {
	user, err := c.session.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Registered %s as %s\n", user.FullName, user.Role)
	return nil
}

func (c *cli) login(ctx context.Context, phone, password string) error {
	user, err := c.session.Login(ctx, phone, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Signed in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

// actor loads the cached identity. Commands that need the database refuse to
// run while offline.
func (c *cli) actor(ctx context.Context, needsBackend bool) (domain.User, error) {
	state, err := c.session.Load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	switch state {
	case session.Anonymous:
		return domain.User{}, errors.New("not signed in, run `cashbook_cli login` first")
	case session.Offline:
		if needsBackend {
			return domain.User{}, errors.New("database unreachable, only whoami works offline")
		}
	}
	user, _ := c.session.Current()
	return user, nil
}

func (c *cli) whoami(ctx context.Context) error {
	user, err := c.actor(ctx, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s\t%s\t%s\t(%s)\n", user.FullName, user.Phone, user.Role, c.session.State())
	return nil
}

func (c *cli) cashbooks(ctx context.Context, status string) error {
	user, err := c.actor(ctx, true)
	if err != nil {
		return err
	}
	var filter domain.CashbookFilter
	if status != "" {
		s := domain.CashbookStatus(status)
		if !s.IsValid() {
			return fmt.Errorf("unknown status %q", status)
		}
		filter.Status = &s
	}

	views, err := c.services.Cashbook.ListCashbooks(ctx, user.UserID, filter)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCAN POST")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", v.CashbookID, v.Name, v.Status, v.Permissions.CanPost)
	}
	return w.Flush()
}

func (c *cli) report(ctx context.Context, rangeName, start, end string) error {
	user, err := c.actor(ctx, true)
	if err != nil {
		return err
	}
	startAt, err := parseDate(start)
	if err != nil {
		return err
	}
	endAt, err := parseDate(end)
	if err != nil {
		return err
	}
	r, err := domain.ResolveReportRange(domain.ReportPreset(rangeName), time.Now(), startAt, endAt)
	if err != nil {
		return err
	}

	report, err := c.services.Reporting.GetAggregatedReport(ctx, user.UserID, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s report, %s to %s\n\n", report.Range.Preset,
		report.Range.Start.Format(time.DateOnly), report.Range.End.Format(time.DateOnly))
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "CASHBOOK\tIN\tOUT\tBALANCE\t")
	for _, row := range report.Cashbooks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", row.CashbookName,
			row.TotalIn.StringFixed(2), row.TotalOut.StringFixed(2), row.Balance.StringFixed(2))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\t\n",
		report.Totals.TotalIn.StringFixed(2), report.Totals.TotalOut.StringFixed(2), report.Totals.Balance.StringFixed(2))
	return w.Flush()
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
