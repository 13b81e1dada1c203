package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"flashcards/internal/bootstrap"
	"flashcards/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	dataPath   string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "flashcards",
		Short:         "Timed flashcards in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.dataPath, "data", "", "dataset to study (csv/tsv file or file.db#table)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(&flags))
	root.AddCommand(newDeckCmd(&flags))
	root.AddCommand(newConfigCmd(&flags))
	return root
}

func loadConfig(flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.dataPath != "" {
		cfg.DataPath = flags.dataPath
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	return cfg, nil
}

func loadApp(flags rootFlags) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func runTUI(flags rootFlags) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return bootstrap.RunTUI(app)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the flashcards terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*flags)
		},
	}
}

func newDeckCmd(flags *rootFlags) *cobra.Command {
	deck := &cobra.Command{Use: "deck", Short: "Dataset commands"}

	var limit int
	show := &cobra.Command{
		Use:   "show <path>",
		Short: "Print the pairs a dataset would load",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*flags)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.DeckCLI.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			header := color.New(color.FgCyan, color.Bold)
			_, _ = header.Fprintf(w, "%s\t%s\n", out.FrontField, out.BackField)
			for i, p := range out.Pairs {
				if limit > 0 && i >= limit {
					break
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", p.Front, p.Back)
			}
			_, _ = color.New(color.Faint).Fprintf(w, "%d pairs from %s\n", len(out.Pairs), out.Source)
			return nil
		},
	}
	show.Flags().IntVar(&limit, "limit", 0, "print at most this many pairs (0 = all)")

	deck.AddCommand(show)
	return deck
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration commands"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			raw, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	})
	return cfgCmd
}
