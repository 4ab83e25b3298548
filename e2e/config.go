package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours          bool          `envconfig:"E2E_COLOURS" default:"true"`
	AuthorityTimeout time.Duration `envconfig:"E2E_AUTHORITY_TIMEOUT" default:"500ms"`
	DeliveryTimeout  time.Duration `envconfig:"E2E_DELIVERY_TIMEOUT" default:"200ms"`
	StepTimeout      time.Duration `envconfig:"E2E_STEP_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
