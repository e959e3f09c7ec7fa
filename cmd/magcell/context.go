package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magcell/config"
	"github.com/katalvlaran/magcell/logging"
	"github.com/katalvlaran/magcell/workflow"
)

type commandContext struct {
	configFlag   *string
	setFlags     *[]string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, setFlags *[]string, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		setFlags:     setFlags,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		var overrides []string
		if c.setFlags != nil {
			overrides = append(overrides, *c.setFlags...)
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			overrides = append(overrides, "log.level="+*c.logLevelFlag)
		}
		if err := cfg.ApplyOverrides(overrides); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func (c *commandContext) runner(cmd *cobra.Command) (*workflow.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	return workflow.New(cfg, workflow.WithLogger(logger))
}
