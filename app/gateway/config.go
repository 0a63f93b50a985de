package gateway

import (
	"github.com/gatekit/gatekit/core/server"
)

// Config is the environment-driven configuration for a gateway application.
type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"gateway"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	Stage    string `env:"APP_STAGE" envDefault:""`
	BasePath string `env:"APP_BASE_PATH" envDefault:""`
}
