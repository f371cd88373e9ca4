package variables

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	HTTP_PORT_DEFAULT         = "8080"
	LIVEKIT_TOKEN_TTL_DEFAULT = 6 * time.Hour
)

var (
	ErrLiveKitNotConfigured = errors.New("livekit api key, secret or url is not configured")
	ErrInvalidServerConfig  = errors.New("invalid server config")
)

type Server struct {
	HTTPPort         string `env:"HTTP_PORT,default=8080"`
	LogLevel         string `env:"LOG_LEVEL,default=info"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS,default=*"`
	// Base for invite links. Falls back to the request scheme and host.
	PublicURL string `env:"PUBLIC_URL"`
}

func (s *Server) AllowOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.CORSAllowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (s *Server) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "dev", "development":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LoadServer() (*Server, error) {
	var cfg Server
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidServerConfig, err)
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = HTTP_PORT_DEFAULT
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	return &cfg, nil
}

// LiveKit holds the signing credentials and the public url handed to browsers.
type LiveKit struct {
	APIKey    string        `env:"LIVEKIT_API_KEY"`
	APISecret string        `env:"LIVEKIT_API_SECRET"`
	URL       string        `env:"LIVEKIT_URL"`
	TokenTTL  time.Duration `env:"LIVEKIT_TOKEN_TTL"`
}

func (l *LiveKit) Validate() error {
	if l.APIKey == "" || l.APISecret == "" || l.URL == "" {
		return ErrLiveKitNotConfigured
	}
	return nil
}

// LiveKitSource is consulted on every request, so credentials can be rotated
// without a restart.
type LiveKitSource interface {
	LiveKit() (*LiveKit, error)
}

type EnvLiveKitSource struct{}

func (EnvLiveKitSource) LiveKit() (*LiveKit, error) {
	var cfg LiveKit
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, errors.Join(ErrLiveKitNotConfigured, err)
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = LIVEKIT_TOKEN_TTL_DEFAULT
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LiveKitSecret is the part of the LiveKit config needed to verify tokens.
type LiveKitSecret struct {
	APISecret string `env:"LIVEKIT_API_SECRET"`
}

func LoadLiveKitSecret() (string, error) {
	var cfg LiveKitSecret
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return "", errors.Join(ErrLiveKitNotConfigured, err)
	}
	if cfg.APISecret == "" {
		return "", ErrLiveKitNotConfigured
	}
	return cfg.APISecret, nil
}

type StaticLiveKitSource struct {
	Config LiveKit
}

func (s StaticLiveKitSource) LiveKit() (*LiveKit, error) {
	cfg := s.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = LIVEKIT_TOKEN_TTL_DEFAULT
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	_ LiveKitSource = EnvLiveKitSource{}
	_ LiveKitSource = StaticLiveKitSource{}
)

// LoadDotenv fills the process environment from the given files without
// overriding variables that are already set. Missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("unable load %s. Err: %w", path, err)
		}
	}
	return nil
}
