package app

import (
	"context"
	"fmt"

	"github.com/wicaksn/otpgate/internal/auth"
	"github.com/wicaksn/otpgate/internal/notification"
	"github.com/wicaksn/otpgate/internal/pkg/clock"
	"github.com/wicaksn/otpgate/internal/pkg/config"
	"github.com/wicaksn/otpgate/internal/pkg/hash"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
	"github.com/wicaksn/otpgate/internal/pkg/router"
	"github.com/wicaksn/otpgate/internal/pkg/sms"
	"github.com/wicaksn/otpgate/internal/pkg/uid"
	"github.com/wicaksn/otpgate/internal/pkg/validator"
)

// registerModules builds the shared components and wires every module onto
// the router and the broker.
func registerModules(ctx context.Context, cfg config.Config, infra *infrastructure) (*router.Router, error) {
	clk := clock.New()

	tokenizer := jwt.NewSymmetric(
		cfg.GetString("jwt.secret"),
		cfg.GetString("jwt.issuer"),
		cfg.GetDuration("jwt.ttl"),
		clk,
	)

	valid, err := validator.NewV10()
	if err != nil {
		return nil, err
	}

	numID, err := uid.NewSnowflake(int64(cfg.GetInt("snowflake.node")))
	if err != nil {
		return nil, err
	}

	rt := router.New(cfg, tokenizer)

	err = auth.New(ctx, auth.Dependency{
		Router:    rt,
		Pool:      infra.pool,
		Messaging: infra.messaging,
		Validator: valid,
		Hash:      hash.NewBcrypt(cfg.GetInt("bcrypt.cost")),
		JWT:       tokenizer,
		NumberID:  numID,
		Clock:     clk,
	})
	if err != nil {
		return nil, fmt.Errorf("wire auth module: %w", err)
	}

	err = notification.New(notification.Dependency{
		Messaging: infra.messaging,
		Redis:     infra.redis,
		SMS:       newSMSTransport(cfg),
		Clock:     clk,
	})
	if err != nil {
		return nil, fmt.Errorf("wire notification module: %w", err)
	}

	return rt, nil
}

// newSMSTransport picks the SMS driver. Anything but "http" falls back to
// the log transport so local runs need no gateway credentials.
func newSMSTransport(cfg config.Config) sms.Sender {
	if cfg.GetString("sms.driver") == "http" {
		return sms.NewHTTPProvider(
			cfg.GetString("sms.endpoint"),
			cfg.GetString("sms.apiKey"),
			cfg.GetString("sms.sender"),
		)
	}

	return sms.NewLogdev()
}
