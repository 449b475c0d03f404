package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/commercekit/storefront-bff/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewHealthHandler wires liveness checks for everything the BFF depends on:
// the session store, the notification log and the commerce backend itself.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-bff",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: true,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "commerce-backend",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check:     commerceCheck(cfg),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func commerceCheck(cfg *config.Config) func(ctx context.Context) error {

	client := &http.Client{Timeout: cfg.CommerceBackend.Timeout}

	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.CommerceBackend.BaseURL+"/health", nil)
		if err != nil {
			return fmt.Errorf("failed to build commerce health request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach commerce backend: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("commerce backend unhealthy: status %d", resp.StatusCode)
		}

		return nil
	}
}
