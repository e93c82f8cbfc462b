package cli

import (
	"github.com/dmitrijs2005/hydroforum/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the "forum" command tree. Without a subcommand it
// starts the interactive client.
func NewRootCommand() *cobra.Command {
	var (
		flags config.FlagValues
		cfg   *config.Config
	)

	root := &cobra.Command{
		Use:           "forum",
		Short:         "HydroHelper discussion forum",
		Long:          "Local discussion forum: register, log in, create topics and browse them by category.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.LoadConfig(flags.ConfigPath)
			if err != nil {
				return err
			}
			flags.Apply(cmd.Flags(), c)
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}
	flags.Register(root.PersistentFlags())

	repl := func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, cfg, func(a *App) error {
			return a.Run(cmd.Context())
		})
	}
	root.RunE = repl
	root.Args = cobra.NoArgs

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive client",
			Args:  cobra.NoArgs,
			RunE:  repl,
		},
		topicsCmd(&cfg),
		exportCmd(&cfg),
		importCmd(&cfg),
		resetCmd(&cfg),
	)
	return root
}

func topicsCmd(cfg **config.Config) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Print the topic list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *cfg, func(a *App) error {
				return a.ctrl.Dispatch(cmd.Context(), SetFilter{Category: category})
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "show only topics in this category")
	return cmd
}

func exportCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all users and topics to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *cfg, func(a *App) error {
				return a.Export(cmd.Context(), args[0])
			})
		},
	}
}

func importCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all users and topics with a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *cfg, func(a *App) error {
				return a.Import(cmd.Context(), args[0])
			})
		},
	}
}

func resetCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all local forum data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *cfg, func(a *App) error {
				return a.Reset(cmd.Context())
			})
		},
	}
}

func withApp(cmd *cobra.Command, cfg *config.Config, fn func(*App) error) error {
	a, err := NewApp(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
