package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/planetarium-reservation-system/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const (
	dbName         = "planetarium_reservation"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	TestUserFirstName = "Carl"
	TestUserLastName  = "Sagan"
	TestUserEmail     = "carl@example.com"
	TestUserPassword  = "pale-Blue-dot-1990"

	TestThemeName       = "Deep Sky"
	TestShowTitle       = "Voyage to the Outer Planets"
	TestShowDescription = "A guided tour past the gas giants and their moons."
	TestDomeName        = "Main Dome"
	TestDomeRows        = 10
	TestDomeSeatsPerRow = 10
)

// BaseSuite owns the postgres and redis containers shared by one suite and
// a fully wired application serving the real router.
type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *postgres.PostgresContainer
	cacheContainer *tcredis.RedisContainer
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	dbContainer, dsn, err := startPostgres(ctx)
	s.Require().NoError(err)
	s.dbContainer = dbContainer

	cacheContainer, cacheAddr, err := startRedis(ctx)
	s.Require().NoError(err)
	s.cacheContainer = cacheContainer

	cfg := app.Config{
		Port:       3000,
		Env:        "test",
		UploadsDir: s.T().TempDir(),
		DB: app.DBConfig{
			DSN:          dsn,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          cacheAddr,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
	}

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err)

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if err := testcontainers.TerminateContainer(s.dbContainer); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	if err := testcontainers.TerminateContainer(s.cacheContainer); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// Scenario describes one request/response expectation against the running
// application.
type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
