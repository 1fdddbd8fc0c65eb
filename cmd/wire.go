package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/dreamai-cli/internal/adapters/backend"
	clipboardadapter "github.com/bnema/dreamai-cli/internal/adapters/clipboard"
	s3publish "github.com/bnema/dreamai-cli/internal/adapters/publish/s3"
	"github.com/bnema/dreamai-cli/internal/adapters/render"
	tomlrepo "github.com/bnema/dreamai-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/dreamai-cli/internal/adapters/storage/file"
	"github.com/bnema/dreamai-cli/internal/application"
	"github.com/bnema/dreamai-cli/internal/config"
	"github.com/bnema/dreamai-cli/internal/logger"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

type app struct {
	cfg           config.Config
	log           *logrus.Logger
	session       *application.SessionStore
	auth          *application.AuthService
	authAPI       *backend.AuthAPI
	users         *backend.UserAPI
	subscriptions *backend.SubscriptionAPI
	history       *tomlrepo.HistoryRepository
	generator     *application.GenerationOrchestrator
	actions       *application.MediaActions
	renderer      func(render.View) (string, error)
	openURL       func(string) error
	now           func() time.Time
}

type wireOptions struct {
	verbose bool
	stderr  io.Writer
}

func wireApp(opts wireOptions) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, v, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(opts.stderr, cfg.LogLevel, opts.verbose)
	if err != nil {
		return nil, err
	}

	timeout := backend.DefaultTimeout
	if cfg.APITimeout != "" {
		timeout, err = time.ParseDuration(cfg.APITimeout)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", config.KeyAPITimeout, err)
		}
	}
	httpClient := &http.Client{Timeout: timeout}

	session := application.NewSessionStore(filestore.NewStore(cfg.StorageDir), log)
	client := backend.NewClient(cfg.APIBaseURL, session, backend.WithHTTPClient(httpClient), backend.WithLogger(log))
	authAPI := backend.NewAuthAPI(client)
	users := backend.NewUserAPI(client)

	history, err := tomlrepo.NewHistoryRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	var publisher ports.Publisher
	if cfg.Publish.Enabled() {
		s3, err := s3publish.NewPublisher(cfg.Publish)
		if err != nil {
			return nil, fmt.Errorf("wire s3 publisher: %w", err)
		}
		publisher = s3
	}

	toast := render.NewToast(opts.stderr)

	return &app{
		cfg:           cfg,
		log:           log,
		session:       session,
		auth:          application.NewAuthService(session, authAPI, users, application.NewQueryCache(application.DefaultQueryStaleTime), application.WithAuthLogger(log)),
		authAPI:       authAPI,
		users:         users,
		subscriptions: backend.NewSubscriptionAPI(client),
		history:       history,
		generator: application.NewGenerationOrchestrator(
			backend.NewMediaAPI(client),
			session,
			toast,
			application.WithHistory(history),
			application.WithOrchestratorLogger(log),
		),
		actions:  application.NewMediaActions(cfg.DownloadDir, httpClient, clipboardadapter.NewSystem(), publisher, toast, ports.SystemClock{}, log),
		renderer: render.Render,
		openURL:  open.Run,
		now:      time.Now,
	}, nil
}
