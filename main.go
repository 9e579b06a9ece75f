package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/config"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/console"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/store"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if err := rootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging writes human-readable logs to stderr so they stay out of
// the game output.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// openBank wires the SQLite store and settings file, creating the database
// first when it is missing and auto-init is on.
func openBank(ctx context.Context, cfg config.Config) *wordbank.Bank {
	db := store.NewSQLite(cfg.DBPath)
	if _, err := os.Stat(cfg.DBPath); errors.Is(err, os.ErrNotExist) && cfg.AutoInit {
		if _, err := initDB(ctx, cfg, cfg.WordsFile); err != nil {
			log.Error().Err(err).Str("db", cfg.DBPath).Msg("could not create word database")
		}
	}
	return wordbank.New(db, settings.Open(cfg.SettingsPath))
}

func initDB(ctx context.Context, cfg config.Config, wordsFile string) (*store.SQLite, error) {
	seed, err := words.Seed(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("load seed words: %w", err)
	}
	db, err := store.Prepare(ctx, cfg.DBPath, seed)
	if err != nil {
		return nil, err
	}
	log.Info().Str("db", cfg.DBPath).Int("seed", len(seed)).Msg("word database ready")
	return db, nil
}

func rootCmd(cfg config.Config) *cobra.Command {
	ctx := context.Background()

	play := func(cmd *cobra.Command, args []string) error {
		bank := openBank(ctx, cfg)
		p := console.New(bank, os.Stdin, os.Stdout, console.IsTerminal(os.Stdout))
		return p.Run(ctx)
	}

	root := &cobra.Command{
		Use:          "wordle",
		Short:        "Guess the five-letter word in five tries",
		SilenceUsage: true,
		RunE:         play,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE:  play,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (build with -tags gui)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !startGUI(ctx, openBank(ctx, cfg)) {
				return errors.New("GUI not supported in this build; rebuild with -tags gui")
			}
			return nil
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := httpserver.New(openBank(ctx, cfg), store.NewMemorySessions())
			log.Info().Str("port", cfg.Port).Msg("starting wordle server")
			return srv.Start(":" + cfg.Port)
		},
	}

	var wordsFile string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the word database and seed the dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if wordsFile == "" {
				wordsFile = cfg.WordsFile
			}
			db, err := initDB(ctx, cfg, wordsFile)
			if err != nil {
				return err
			}
			n, err := db.Count(ctx, store.Dictionary)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d dictionary words\n", cfg.DBPath, n)
			return nil
		},
	}
	initCmd.Flags().StringVar(&wordsFile, "words", "", "seed list, one word per line (default: embedded dictionary)")

	root.AddCommand(playCmd, guiCmd, serveCmd, initCmd, wordsCmd(ctx, cfg), modeCmd(cfg))
	return root
}

func wordsCmd(ctx context.Context, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the custom word list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List custom words",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := openBank(ctx, cfg).CustomWords(ctx)
			if err != nil {
				return err
			}
			for _, w := range list {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [word...]",
		Short: "Add custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := openBank(ctx, cfg)
			for _, w := range args {
				res, err := bank.AddCustomWord(ctx, w)
				if err != nil {
					return fmt.Errorf("%s: %w", w, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", w, res)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [word...]",
		Short: "Delete custom words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := openBank(ctx, cfg)
			for _, w := range args {
				res, err := bank.DeleteCustomWord(ctx, w)
				if err != nil {
					return fmt.Errorf("%s: %w", w, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", w, res)
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}

func modeCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [Default|Custom]",
		Short: "Show or set where secret words come from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := settings.Open(cfg.SettingsPath)
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), f.LoadMode())
				return nil
			}
			m, err := settings.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := f.SaveMode(m); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}
