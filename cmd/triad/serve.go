package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/triadhq/triad/internal/server"
	"github.com/triadhq/triad/pkg/ensemble/config"
	"github.com/triadhq/triad/pkg/ensemble/orchestrate"
	"github.com/triadhq/triad/pkg/ensemble/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		cfg := buildConfig()
		registry := provider.NewDefaultRegistry(cfg)
		orchestrator := orchestrate.New(registry, orchestrate.WithLogger(log))

		srv := server.New(orchestrator, registry, server.Options{
			Logger:    log,
			StaticDir: cfg.StaticDir,
		})

		for _, info := range registry.AllInfo() {
			log.WithFields(logrus.Fields{
				"provider":   info.Name,
				"model":      info.Model,
				"configured": info.Configured,
			}).Info("provider registered")
		}
		log.WithField("addr", cfg.ListenAddr).Info("listening")

		return errors.Wrap(srv.Run(cfg.ListenAddr), "serve")
	},
}

func buildConfig() config.Config {
	options := []config.Option{
		config.WithSummarizer(viper.GetString("default_summarizer")),
		config.WithListenAddr(viper.GetString("listen_addr")),
		config.WithStaticDir(viper.GetString("static_dir")),
	}
	for _, id := range provider.Enumeration {
		name := string(id)
		options = append(options, config.WithProvider(name, config.Credentials{
			APIKey:  viper.GetString(name + "_api_key"),
			Model:   viper.GetString(name + "_model"),
			BaseURL: viper.GetString(name + "_base_url"),
		}))
	}
	return config.New(options...)
}
