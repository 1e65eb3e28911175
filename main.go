package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/api"
	"github.com/llehouerou/rentflow/internal/app"
	"github.com/llehouerou/rentflow/internal/config"
	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/errmsg"
	"github.com/llehouerou/rentflow/internal/logging"
	"github.com/llehouerou/rentflow/internal/state"
)

// resources are closed when the program exits.
type resources struct {
	state *state.Manager
	log   io.Closer
}

func (r resources) Close() {
	if r.state != nil {
		r.state.Close()
	}
	if r.log != nil {
		r.log.Close()
	}
}

func initialModel() (app.Model, resources, error) {
	var res resources

	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, res, fmt.Errorf("load config: %w", err)
	}

	lc := cfg.GetLogConfig()
	res.log, err = logging.Init(logging.Config{Level: lc.Level, File: lc.File})
	if err != nil {
		return app.Model{}, res, fmt.Errorf("init logging: %w", err)
	}
	logger := logging.Component("main")

	res.state, err = state.Open()
	if err != nil {
		res.Close()
		return app.Model{}, resources{}, errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}

	if cfg.HasToken() {
		if err := res.state.SaveToken(cfg.API.Token); err != nil {
			logger.Warn().Err(err).Msg(string(errmsg.OpTokenSave))
		}
	}

	apiCfg := cfg.GetAPIConfig()
	client := api.New(api.Options{
		BaseURL:  apiCfg.BaseURL,
		Timeout:  apiCfg.Timeout(),
		PageSize: apiCfg.PageSize,
		Tokens:   res.state,
	})

	// A broken custom script falls back to the bundled walkthrough.
	script, err := demo.LoadOrBuiltin(cfg.Demo.Script)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Demo.Script).Msg(string(errmsg.OpDemoLoad))
		if script, err = demo.Builtin(); err != nil {
			logger.Error().Err(err).Msg(string(errmsg.OpDemoLoad))
		}
	}

	logger.Info().
		Str("base_url", apiCfg.BaseURL).
		Str("demo", scriptSource(script)).
		Msg("starting")

	return app.New(app.Deps{
		Backend:        client,
		State:          res.state,
		Script:         script,
		RequestTimeout: apiCfg.Timeout(),
	}), res, nil
}

func scriptSource(s *demo.Script) string {
	if s == nil {
		return "none"
	}
	return s.Source
}

func main() {
	m, res, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	res.Close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
