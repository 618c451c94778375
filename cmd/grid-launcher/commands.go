package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"grid-launcher/internal/app"
	"grid-launcher/internal/config"
	"grid-launcher/internal/launcher"
	"grid-launcher/internal/logger"
	"grid-launcher/internal/runner"
)

// cli carries settings from defaults, environment and flags into whichever
// command runs.
type cli struct {
	settings config.Settings
	envErr   error
	logger   logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{settings: config.DefaultSettings()}
	c.envErr = c.settings.ApplyEnv()

	root := &cobra.Command{
		Use:   "grid-launcher",
		Short: "Popup grid of program shortcuts",
		Long: `Open a borderless window with one icon per configured program.

Clicking an icon starts the program. Layout mode adds a "+" tile for adding
programs, middle click removes a program and dragging an icon reorders it.

Without a subcommand the window opens. Subcommands edit the same config file
from the terminal.`,
		Version:           app.AppVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runWindow,
	}
	c.settings.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.listCmd(),
		c.addCmd(),
		c.removeCmd(),
		c.moveCmd(),
		c.layoutCmd(),
		c.launchCmd(),
		c.pathCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := c.settings.Validate(); err != nil {
		return err
	}
	level, err := logger.ParseLevel(c.settings.LogLevel)
	if err != nil {
		return err
	}
	c.logger = logger.New(level, c.settings.JSONLogs)

	if c.envErr != nil {
		c.logger.Warning("CLI", "ignoring invalid environment values", map[string]interface{}{
			"error": c.envErr.Error(),
		})
	}
	c.logger.Debug("CLI", "command starting", map[string]interface{}{
		"command": cmd.Name(),
		"config":  c.settings.ConfigPath,
	})
	return nil
}

func (c *cli) openLauncher() *launcher.Launcher {
	store := config.NewStore(c.settings.ConfigPath, c.logger)
	return launcher.New(store.Load(), store, runner.NewExecRunner(c.logger), c.logger)
}

func (c *cli) runWindow(_ *cobra.Command, _ []string) error {
	application, err := app.NewApplication(c.settings, c.logger)
	if err != nil {
		return err
	}
	return application.Run()
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print configured programs in grid order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := c.openLauncher()
			out := cmd.OutOrStdout()

			programs := l.Programs()
			if len(programs) == 0 {
				fmt.Fprintln(out, "no programs configured")
			}
			for i, p := range programs {
				fmt.Fprintf(out, "%d\t%s\n", i, p.Path)
			}
			fmt.Fprintf(out, "layout mode: %s\n", onOff(l.LayoutMode()))
			return nil
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add PATH",
		Short: "Append a program to the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			l := c.openLauncher()
			if !l.OnAddProgram(path) {
				return fmt.Errorf("nothing to add")
			}
			if err := saved(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", path)
			return nil
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATH",
		Short: "Remove every entry with exactly this path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := c.openLauncher()
			removed := l.OnDeleteProgram(args[0])
			if removed == 0 {
				return fmt.Errorf("%s is not configured", args[0])
			}
			if err := saved(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d %s\n", removed, plural(removed, "entry", "entries"))
			return nil
		},
	}
}

func (c *cli) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the program at index FROM to index TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}

			l := c.openLauncher()
			if !l.OnReorder(from, to) {
				return fmt.Errorf("cannot move %d to %d with %d programs", from, to, len(l.Programs()))
			}
			if err := saved(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moved %d to %d\n", from, to)
			return nil
		},
	}
}

func (c *cli) layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "layout on|off",
		Short:     "Turn layout mode on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled := args[0] == "on"
			l := c.openLauncher()
			l.OnToggleLayoutMode(enabled)
			if err := saved(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layout mode: %s\n", onOff(enabled))
			return nil
		},
	}
}

func (c *cli) launchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch INDEX",
		Short: "Start the program at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			l := c.openLauncher()
			programs := l.Programs()
			if index < 0 || index >= len(programs) {
				return fmt.Errorf("index %d out of range, %d programs configured", index, len(programs))
			}
			return l.Launch(programs[index].Path)
		},
	}
}

func (c *cli) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.settings.ConfigPath)
			return nil
		},
	}
}

func saved(l *launcher.Launcher) error {
	if err := l.SaveError(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
