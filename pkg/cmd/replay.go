package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/peaktrack/pkg/replay"
	"github.com/c9s/peaktrack/pkg/style"
)

func init() {
	ReplayCmd.Flags().String("samples", "", "csv file of price samples, overrides samplesFile of the config")
	ReplayCmd.Flags().String("symbol", "", "symbol label, overrides symbol of the config")
	ReplayCmd.Flags().String("metrics-bind", "", "serve prometheus metrics on this address and keep running after the replay")
	ReplayCmd.Flags().Bool("no-table", false, "do not print the snapshot table")
	RootCmd.AddCommand(ReplayCmd)
}

var ReplayCmd = &cobra.Command{
	Use:          "replay",
	Short:        "replay price samples through the peak bid/ask tracker",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		samplesFile, err := cmd.Flags().GetString("samples")
		if err != nil {
			return err
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		metricsBind, err := cmd.Flags().GetString("metrics-bind")
		if err != nil {
			return err
		}

		noTable, err := cmd.Flags().GetBool("no-table")
		if err != nil {
			return err
		}

		config, err := loadReplayConfig(viper.GetString("config"), len(samplesFile) > 0)
		if err != nil {
			return err
		}

		if len(samplesFile) > 0 {
			config.SamplesFile = samplesFile
		}

		if len(symbol) > 0 {
			config.Symbol = symbol
		}

		if len(config.SamplesFile) == 0 {
			return errors.New("samples file is required, set samplesFile in the config or use --samples")
		}

		samples, err := replay.ReadSamplesFile(config.SamplesFile)
		if err != nil {
			return errors.Wrapf(err, "unable to read samples from %s", config.SamplesFile)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		var server *http.Server
		if len(metricsBind) > 0 {
			server = serveMetrics(metricsBind)
		}

		log.Infof("replaying %d samples of %s, recompute every %d samples, round length %d",
			len(samples), config.Symbol, config.RecomputeEvery, config.RoundLength)

		runner := replay.NewRunner(*config, nil)
		snapshots, err := runner.Run(ctx, samples)
		if err != nil {
			return err
		}

		if !noTable {
			var tableStyle *table.Style
			if !color.NoColor {
				tableStyle = style.NewDefaultTableStyle()
			}
			replay.PrintSnapshots(os.Stdout, config.Symbol, snapshots, tableStyle)
		}

		printSummary(runner)

		if server != nil {
			log.Infof("replay finished, serving metrics on %s until interrupted", metricsBind)
			<-ctx.Done()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return server.Shutdown(shutdownCtx)
		}

		return nil
	},
}

func loadReplayConfig(configFile string, optional bool) (*replay.Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		if optional && os.IsNotExist(err) {
			log.Debugf("config file %s not found, using the default config", configFile)
			config := &replay.Config{}
			config.Defaults()
			return config, nil
		}

		return nil, errors.Wrapf(err, "unable to load config file %s", configFile)
	}

	return replay.LoadConfig(configFile)
}

func serveMetrics(bind string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              bind,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Errorf("metrics server error")
		}
	}()

	return server
}

func printSummary(runner *replay.Runner) {
	tracker := runner.Tracker()
	bid, ask, mid, spread := tracker.CurrentPeakValue()
	exitBid, exitAsk := tracker.PositionExitPriceLevel()

	c := color.New(color.FgHiYellow)
	c.Printf("rounds: %d, processed spreads: %d\n", runner.Round(), tracker.ProcessedValues().Length())
	c.Printf("peak bid: %f, peak ask: %f, peak mid: %f, peak spread: %f\n", bid, ask, mid, spread)

	if smoothed, ok := tracker.CurrentValue(); ok {
		c.Printf("smoothed spread: %f\n", smoothed)
	} else {
		c.Printf("smoothed spread: not ready\n")
	}

	c.Printf("position exit price level: bid %s, ask %s\n", exitBid.String(), exitAsk.String())
}
