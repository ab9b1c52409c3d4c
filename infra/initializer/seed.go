package initializer

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/shopspring/decimal"
)

var seedPeople = []struct {
	name    string
	balance int64
}{
	{"Vinicius Cruz", 500},
	{"João Silva", 1000},
	{"Maria Santos", 2500},
}

// Seed writes the demo login and the demo people, each only when its table is
// still empty, so restarts never duplicate rows.
func Seed(ctx context.Context, a *app.App, cfg *config.Seed, logger *slog.Logger) error {
	if cfg == nil || !cfg.Enabled {
		logger.Debug("Seeding disabled")
		return nil
	}

	users, err := a.AuthService.CountUsers(ctx)
	if err != nil {
		return err
	}
	if users == 0 {
		if _, err := a.AuthService.Register(ctx, cfg.Username, cfg.Password); err != nil {
			return err
		}
		logger.Info("Seeded user", "username", cfg.Username)
	}

	people, err := a.PersonService.Count(ctx)
	if err != nil {
		return err
	}
	if people > 0 {
		logger.Info("Skipping people seed; table not empty", "existing_count", people)
		return nil
	}
	for _, p := range seedPeople {
		if _, err := a.PersonService.CreatePerson(ctx, p.name, decimal.NewFromInt(p.balance)); err != nil {
			return err
		}
	}
	logger.Info("Seeded people", "count", len(seedPeople))
	return nil
}
