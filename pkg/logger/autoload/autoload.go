// Package autoload initializes the global logger from LOG_* environment
// variables when imported for side effect.
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/nileshdh/restaurant-agent/pkg/logger"
)

func init() {
	var conf logx.Config
	// Missing or malformed LOG_* vars fall back to defaults.
	_ = envconfig.Process("LOG", &conf)
	logx.Init(conf)
}
