package commands

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/termsnake/termsnake/config"
	"github.com/termsnake/termsnake/version"
)

var rootCmd = &cobra.Command{
	Use:     "termsnake",
	Short:   "termsnake plays snake in your terminal",
	Version: version.Version,
	PreRun:  func(c *cobra.Command, args []string) { setup() },
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	logFile    = config.LogFile
	promEnable = false
	promListen = config.PrometheusListen
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup routes logs away from the terminal the game is drawn on and starts
// the metrics exporter when asked for.
func setup() {
	logging()
	prometheus()
}

func logging() {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
		return
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Printf("unable to open log file %s: %v\n", logFile, err)
		os.Exit(1)
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
}

func prometheus() {
	if !promEnable {
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
