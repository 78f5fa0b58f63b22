package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/fluxblock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const envPrefix = "FLUXBLOCK"

// Configuration keys, also usable as FLUXBLOCK_<KEY> with dots replaced by underscores
const (
	keyEditorMode    = "editorMode"
	keyPlatform      = "platform"
	keySettingsURL   = "settingsURL"
	keyPackBaseURL   = "packBaseURL"
	keyPacks         = "packs"
	keyPackDir       = "packDir"
	keyTracing       = "tracing.enabled"
	keyTracingOutput = "tracing.output"
	keyVerbosity     = "verbosity"
)

var printer = message.NewPrinter(language.English)

// app holds state shared by the commands of one root command
type app struct {
	config *viper.Viper
}

// Execute runs the root command
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// NewRootCommand creates the fluxblock command tree
func NewRootCommand(version string) *cobra.Command {
	a := &app{config: viper.New()}
	var configFile string
	root := &cobra.Command{
		Use:           "fluxblock",
		Short:         "Inspect block packs of the fluxblock editor",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(configFile)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml)")
	flags.StringSlice(keyPacks, nil, "pack document URLs")
	flags.String(keyPackDir, "", "location scanned for pack documents")
	flags.String(keyPackBaseURL, "", "base URL of relative pack locations")
	flags.String(keyPlatform, "", "current platform (all, web, electron, nodejs)")
	flags.String(keySettingsURL, "", "settings document URL")
	flags.Bool("trace", false, "write OpenTelemetry spans")
	flags.String("trace-output", "", "span output file, stdout when empty")
	flags.Int(keyVerbosity, 0, "log verbosity")
	for _, key := range []string{keyPacks, keyPackDir, keyPackBaseURL, keyPlatform, keySettingsURL, keyVerbosity} {
		_ = a.config.BindPFlag(key, flags.Lookup(key))
	}
	_ = a.config.BindPFlag(keyTracing, flags.Lookup("trace"))
	_ = a.config.BindPFlag(keyTracingOutput, flags.Lookup("trace-output"))

	root.AddCommand(a.categoriesCommand(), a.blocksCommand(), a.kindsCommand(), a.checkCommand())
	return root
}

func (a *app) load(configFile string) error {
	a.config.SetEnvPrefix(envPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.config.AutomaticEnv()
	if configFile == "" {
		return nil
	}
	a.config.SetConfigFile(configFile)
	if err := a.config.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", configFile, err)
	}
	return nil
}

// serviceConfig maps viper keys onto the service configuration
func (a *app) serviceConfig() *fluxblock.Config {
	ret := &fluxblock.Config{
		Platform:    a.config.GetString(keyPlatform),
		SettingsURL: a.config.GetString(keySettingsURL),
		PackBaseURL: a.config.GetString(keyPackBaseURL),
		Packs:       a.config.GetStringSlice(keyPacks),
		Tracing: fluxblock.TracingConfig{
			Enabled: a.config.GetBool(keyTracing),
			Output:  a.config.GetString(keyTracingOutput),
		},
	}
	if a.config.IsSet(keyEditorMode) {
		editorMode := a.config.GetBool(keyEditorMode)
		ret.EditorMode = &editorMode
	}
	return ret
}

// service creates a service with the configured packs loaded
func (a *app) service(cmd *cobra.Command, options ...fluxblock.Option) (*fluxblock.Service, error) {
	stdr.SetVerbosity(a.config.GetInt(keyVerbosity))
	logger := stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)).WithName("fluxblock")
	options = append([]fluxblock.Option{fluxblock.WithLogger(logger)}, options...)
	srv, err := fluxblock.NewFromConfig(cmd.Context(), a.serviceConfig(), options...)
	if err != nil {
		return nil, err
	}
	if dir := a.config.GetString(keyPackDir); dir != "" {
		if _, err = srv.LoadPackDir(cmd.Context(), dir); err != nil {
			return nil, err
		}
	}
	return srv, nil
}
