//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"evcontrol/cmd/bootstrap"
	"evcontrol/internal/pkg/config"
	"evcontrol/tests/common/fakebackend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const testCSRFKey = "0123456789abcdef0123456789abcdef"

// ------------------------------------------------------------
// per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, backend *fakebackend.Backend) (http.Handler, config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := createTestConfig(backend)
	handler, app := buildE2EApp(cfg)
	require.NotNil(t, handler, "failed to set up the router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop the fx application", "error", err.Error())
		}
	})

	return handler, cfg
}

// ------------------------------------------------------------
// builds the real fx graph without loading env or listening
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (http.Handler, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
		bootstrap.ConfigPartsOption,
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.AppModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("failed to start the fx application")
	}

	return bootstrap.WithCSRF(cfg, router), app
}

func createTestConfig(backend *fakebackend.Backend) config.Config {
	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = backend.BaseURL()
	cfg.Backend.Timeout = 5 * time.Second
	cfg.CSRF.Enabled = true
	cfg.CSRF.Key = testCSRFKey
	return cfg
}

// ------------------------------------------------------------
// shared e2e suite: one fake backend and app per test
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Backend *fakebackend.Backend
	Handler http.Handler
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T, seed ...map[string]any) {
	s.Backend = fakebackend.New(t, seed...)
	s.Handler, s.Config = setupE2EEnvironment(t, s.Backend)
	require.NotNil(t, s.Handler, "failed to set up the handler")
}
