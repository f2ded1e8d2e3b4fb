package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/legendcard/internal/card"
	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/host"
	"github.com/alexisbeaulieu97/legendcard/internal/logger"
	"github.com/alexisbeaulieu97/legendcard/internal/ports"
	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

// session bundles what a command needs to drive one card.
type session struct {
	card  *card.Card
	host  *host.SnapshotHost
	log   *logger.Logger
	lints []error
}

type sessionOptions struct {
	configPath string
	statesPath string
}

func openSession(cmd *cobra.Command, flags *rootFlags, operation string, opts sessionOptions) (*session, error) {
	log, err := flags.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, newCommandError(operation, "configuring logging", err, "Use one of: trace, debug, info, warn, error.")
	}
	log = log.WithFields(map[string]any{"command": operation})
	log.Debug("starting command", "config", opts.configPath, "states", opts.statesPath)

	if err := validateFilePath("config", opts.configPath); err != nil {
		return nil, newCommandError(operation, "locating configuration", err, "Pass the card configuration with --config.")
	}

	raw, err := config.LoadRaw(opts.configPath)
	if err != nil {
		return nil, configCommandError(operation, err)
	}

	s := &session{log: log}

	var h ports.Host
	if opts.statesPath != "" {
		snapshot, err := loadSnapshot(opts.statesPath, log)
		if err != nil {
			return nil, newCommandError(operation, "loading states", err, "Export states with GET /api/states or write an object keyed by entity id.")
		}
		s.host = snapshot
		h = snapshot
	}

	s.card = card.New(h, log)
	if err := s.card.SetConfig(raw); err != nil {
		return nil, configCommandError(operation, err)
	}
	s.lints = config.Lint(s.card.Config())

	return s, nil
}

func loadSnapshot(path string, log *logger.Logger) (*host.SnapshotHost, error) {
	if err := validateFilePath("states", path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return host.NewSnapshotHost(data, log)
}

func configCommandError(operation string, err error) error {
	var parseErr *cardErrors.ParseError
	if errors.As(err, &parseErr) {
		suggestion := "Check that the file is valid YAML or JSON."
		if parseErr.Line > 0 {
			suggestion = fmt.Sprintf("Check the syntax near line %d.", parseErr.Line)
		}
		return newCommandError(operation, "reading configuration", err, suggestion)
	}
	if errors.Is(err, cardErrors.ErrMissingEntity) {
		return newCommandError(operation, "validating configuration", err, "Set entity to the sensor the card displays, for example entity: sensor.living_room_temperature.")
	}
	return newCommandError(operation, "validating configuration", err, "Fix the configuration and try again.")
}
