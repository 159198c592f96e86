package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"litreview/internal/application/content"
	reviewUsecases "litreview/internal/application/review/usecases"
	subscriptionUsecases "litreview/internal/application/subscription/usecases"
	ticketUsecases "litreview/internal/application/ticket/usecases"
	userUsecases "litreview/internal/application/user/usecases"
	"litreview/internal/infrastructure/auth"
	"litreview/internal/infrastructure/config"
	"litreview/internal/infrastructure/database"
	"litreview/internal/infrastructure/repository"
	"litreview/internal/infrastructure/storage"
	"litreview/internal/shared/db"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
	"litreview/internal/shared/services/markdown"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data from a YAML fixture",
		Long:  `Create users, follows, tickets and reviews described in a YAML fixture file.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.example.yaml", "Fixture file to load")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fx, err := LoadFixture(file)
	if err != nil {
		return err
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger().Named("seed")
	summary, err := BuildSeeder(database.Get(), cfg, log).Run(contextOrBackground(cmd.Context()), fx)
	if err != nil {
		log.Errorw("seed failed", "error", err, "hint", failureHint(err))
		return err
	}

	log.Infow("seed completed",
		"users", summary.Users,
		"follows", summary.Follows,
		"tickets", summary.Tickets,
		"reviews", summary.Reviews)
	return nil
}

// BuildSeeder wires the use cases a seed run needs against gdb.
func BuildSeeder(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Seeder {
	userRepo := repository.NewUserRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	followRepo := repository.NewFollowRepository(gdb)

	txMgr := db.NewTransactionManager(gdb)
	media := storage.NewLocalMediaStore(cfg.Media.Root, cfg.Media.URLPrefix, cfg.Media.MaxUploadMB, log)
	assembler := content.NewAssembler(userRepo, ticketRepo, reviewRepo, markdown.NewRenderer(), media, log)

	return NewSeeder(
		userRepo,
		userUsecases.NewSignUpUseCase(userRepo, auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost), log),
		subscriptionUsecases.NewApplySubscriptionUseCase(userRepo, followRepo, txMgr, log),
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, media, assembler, log),
		reviewUsecases.NewCreateReviewUseCase(ticketRepo, reviewRepo, txMgr, assembler, log),
		log,
	)
}

// contextOrBackground guards direct calls to run in tests where cobra has
// not set a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// failureHint tells the operator whether the fixture or the environment needs
// fixing. Rows created before the failing entry are kept either way.
func failureHint(err error) string {
	switch {
	case errors.IsValidationError(err):
		return "fixture entry rejected, fix it and rerun"
	case errors.IsNotFoundError(err):
		return "fixture references a missing user or ticket"
	default:
		return "check the database and rerun"
	}
}
