package bootstrap

import (
	"fmt"

	coreconfig "github.com/m3rciful/gamebot/core/config"
	"github.com/m3rciful/gamebot/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
}

// Run initializes shared infrastructure. The bot keeps all state in memory,
// so only the logger needs to be brought up.
func Run(opts Options) error {
	if opts.Config == nil {
		return fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return fmt.Errorf("bootstrap: logger init failed: %w", err)
	}
	return nil
}
