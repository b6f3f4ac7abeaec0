// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the shared startup path (config, logging,
// i18n and store) and the version command.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/addressbook/buildvars"
	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/config"
	"github.com/toeirei/addressbook/internal/db"
	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/logging"
)

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	appConfig config.Config
	appStore  db.Store
)

// openStore is a package-level variable so tests can inject a store.
var openStore = db.NewStoreFromDSN

// now is the clock used for birthday calculations.
var now = time.Now

func setupDefaultServices(cmd *cobra.Command) error {
	closeStore()

	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run: persist the defaults so the user has a file to edit.
		if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("%s", i18n.T("config.wrote_default", path))
		}
	} else if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		appConfig.Log.Level = "debug"
		db.SetDebug(true)
	}
	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}

	i18n.Init(appConfig.Language)

	logging.Debugf("opening %s store at %s", appConfig.Store.Type, appConfig.Store.Dsn)
	appStore, err = openStore(appConfig.Store.Type, appConfig.Store.Dsn)
	if err != nil {
		return errors.New(i18n.T("config.error_open_store", err))
	}
	return nil
}

func closeStore() {
	if appStore == nil {
		return
	}
	if err := appStore.Close(); err != nil {
		logging.Warnf("could not close store: %v", err)
	}
	appStore = nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// withBook loads the book from the configured store, passes it to fn and, if
// save is set and fn succeeded, writes it back.
func withBook(cmd *cobra.Command, save bool, fn func(b *book.AddressBook) error) error {
	ctx := cmd.Context()
	b, err := appStore.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(b); err != nil {
		return err
	}
	if !save {
		return nil
	}
	return appStore.Save(ctx, b)
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command with all subcommands attached. Each call
// returns an independent tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addressbook",
		Short: i18n.T("root.short"),
		Long: `Addressbook keeps named contacts with phone numbers and an optional
birthday. Contacts are stored in a compressed file by default, or in a
sqlite, postgres or mysql database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return setupDefaultServices(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeStore()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	// Cobra prints Version and skips all hooks when --version is set.
	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	defaults := config.Defaults()
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `Output language ("en", "de")`)
	cmd.PersistentFlags().String("store.type", defaults["store.type"].(string), "Store type (file, sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("store.dsn", defaults["store.dsn"].(string), "Store location: a file path or a database DSN")
	cmd.PersistentFlags().Int("page-size", defaults["page-size"].(int), "Contacts per page")
	cmd.PersistentFlags().String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newAddCmd(),
		newDeleteCmd(),
		newShowCmd(),
		newPhoneCmd(),
		newBirthdayCmd(),
		newListCmd(),
		newSearchCmd(),
		newExportCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	if c != "" && c != "dev" {
		v = v + " (" + c + ")"
	}
	if d != "" {
		v = v + " built: " + d
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
