package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rallysight/wrc-results-go/config"
	"github.com/rallysight/wrc-results-go/logger"
	"github.com/rallysight/wrc-results-go/wrc"
)

var (
	cfgFile string

	cfg  *config.AppConfig
	logg *zap.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wrc-results",
	Short: "Fetch WRC rally results and export them as CSV or tables",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config.yml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

func setup() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if viper.GetBool("debug") {
		cfg.Debug = true
	}
	logg, err = logger.New(cfg.Debug)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logg)
	return nil
}

func newClient() *wrc.Client {
	httpClient := &http.Client{}
	if cfg.API.TimeoutMS > 0 {
		httpClient.Timeout = time.Duration(cfg.API.TimeoutMS) * time.Millisecond
	}
	return wrc.NewClient(
		wrc.WithBaseURLs(cfg.API.SeasonURL, cfg.API.ResultsURL),
		wrc.WithHTTPClient(httpClient),
		wrc.WithUserAgent(cfg.API.UserAgent),
		wrc.WithLogger(logg),
	)
}
