package cli

import (
	"fmt"

	"student-manager/config"
	"student-manager/database"
	"student-manager/grid"
	"student-manager/logger"
	"student-manager/service"
	"student-manager/store"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"
	Verbose    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the student manager.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "students",
		Short:         "Student roster manager",
		Long:          "Manage the students table (id, name, course, mobile) from a window, an HTTP API or the shell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file (DB_* env vars override it, legacy HOST/USERNAME/PASSWORD do not)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewDesktopCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewCoursesCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// env is what most commands need, built from the global flags.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	provider *database.Provider
	svc      *service.StudentService
}

func setup(opts *RootOptions) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.NewFromConfig(cfg.LogFormat, cfg.LogLevel)

	provider, err := database.NewProviderFromConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	svc := service.NewStudentService(store.NewStudentStore(provider, log), grid.New(), log)
	return &env{cfg: cfg, log: log, provider: provider, svc: svc}, nil
}
