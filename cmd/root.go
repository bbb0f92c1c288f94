package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wryte/internal/app"
	wryteerrors "wryte/internal/errors"
	"wryte/internal/logging"
)

const (
	envPrefix       = "WRYTE"
	defaultLogLevel = "warn"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "wryte",
	Short: "Save and load wryte documents",
	Long: `Wryte persists editor documents as plain files.

Documents are written to an explicit path or, when no path is given, to
$HOME/wryte_document.html. The same commands are available to a desktop
shell through "wryte serve".`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wryte/config.yaml)")
	rootCmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().
		String("log-format", logging.FormatText, "Log format: text or json")

	bindFlags()
}

// bindFlags exposes the persistent flags to viper.
func bindFlags() {
	for _, name := range []string{"verbose", "log-level", "log-format"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// loadDotEnv applies WRYTE_* keys from a .env file in the working
// directory without overriding the environment. Other keys, HOME in
// particular, are ignored so the default document path only follows the
// real environment. A missing .env is the normal case.
func loadDotEnv(filenames ...string) error {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for key, value := range values {
		if !strings.HasPrefix(key, envPrefix+"_") {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

func initConfig() {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, ok := os.LookupEnv("HOME"); ok {
		viper.AddConfigPath(filepath.Join(home, ".config", "wryte"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; an unreadable one is not.
		if cfgFile != "" || !errors.As(err, &notFound) {
			cfgErr := wryteerrors.NewConfigurationError("config", viper.ConfigFileUsed(), "failed to read config file", err)
			fmt.Fprintf(os.Stderr, "Failed to initialize application: %v: %v\n", cfgErr, err)
			os.Exit(1)
		}
	}

	opts, err := appOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}

// appOptions translates viper settings into application options.
func appOptions() ([]app.Option, error) {
	levelName := viper.GetString("log-level")
	level, ok := logging.ParseLevel(levelName)
	if !ok {
		return nil, wryteerrors.NewConfigurationError("log-level", levelName, "unknown log level", nil)
	}

	opts := []app.Option{
		app.WithLogLevel(level),
		app.WithLogFormat(viper.GetString("log-format")),
	}
	if viper.GetBool("verbose") {
		opts = append(opts, app.WithVerbose(true))
	}
	return opts, nil
}
