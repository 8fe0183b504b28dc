package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gatewayadapter "github.com/SSebia/adsite-cli/internal/adapters/gateway"
	notifyadapter "github.com/SSebia/adsite-cli/internal/adapters/notify"
	sessionadapter "github.com/SSebia/adsite-cli/internal/adapters/session"
	"github.com/SSebia/adsite-cli/internal/application"
	"github.com/SSebia/adsite-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	configDir      = ".adsite"
	sessionFile    = "session.toml"
	baseURLKey     = "api.base_url"
	timeoutKey     = "api.timeout"
	sessionPathKey = "session.path"

	defaultBaseURL = "http://localhost:8080/api"
	defaultTimeout = 10 * time.Second
)

type app struct {
	sessionStore ports.SessionStore
	gateway      ports.Gateway
	listings     *application.ListingStore
	categories   *application.CategoryStore
	comments     *application.CommentCache
}

func wireApp() (*app, error) {
	cfg, err := loadConfig(viper.New())
	if err != nil {
		return nil, err
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionStore := sessionadapter.NewStore(sessionPath)

	baseURL := envOrDefault("ADSITE_API_URL", cfg.GetString(baseURLKey))
	if baseURL == "" {
		return nil, errors.New("api base url is empty")
	}

	gateway := gatewayadapter.NewClient(baseURL, sessionStore)
	gateway.RequestTimeout = cfg.GetDuration(timeoutKey)

	return &app{
		sessionStore: sessionStore,
		gateway:      gateway,
		listings:     application.NewListingStore(),
		categories:   application.NewCategoryStore(),
		comments:     application.NewCommentCache(),
	}, nil
}

func loadConfig(cfg *viper.Viper) (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(timeoutKey, defaultTimeout)
	cfg.SetDefault(sessionPathKey, filepath.Join(homeDir, configDir, sessionFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Per-invocation services: notifications go to the command's own output so
// they land where the invoking terminal (or test) expects them.
func (a *app) notifier(cmd *cobra.Command) ports.Notifier {
	return notifyadapter.NewTerminal(cmd.OutOrStdout())
}

func (a *app) directoryService() *application.DirectoryService {
	return application.NewDirectoryService(a.gateway, a.listings, a.categories)
}

func (a *app) listingService(cmd *cobra.Command) *application.ListingService {
	return application.NewListingService(a.gateway, a.listings, a.categories, a.notifier(cmd))
}

func (a *app) commentService(cmd *cobra.Command) *application.CommentService {
	return application.NewCommentService(a.gateway, a.comments, a.sessionStore, a.notifier(cmd))
}
