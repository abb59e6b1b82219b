package messaging

import (
	"fmt"
	"strings"

	"github.com/wicaksn/otpgate/internal/pkg/config"
)

// New builds a Client for the driver selected in configuration. Supported
// drivers are nats, nsq and kafka.
func New(cfg config.Config) (Client, error) {
	driver := cfg.GetString("messaging.driver")

	switch driver {
	case "nats":
		return NewNATS(cfg.GetString("messaging.nats.url"))
	case "nsq":
		return NewNSQ(cfg.GetString("messaging.nsq.address"))
	case "kafka":
		brokers := strings.Split(cfg.GetString("messaging.kafka.brokers"), ",")
		return NewKafka(brokers), nil
	default:
		return nil, fmt.Errorf("unknown messaging driver %q", driver)
	}
}
