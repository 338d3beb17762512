package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/ballchaser/internal/config"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/host"
)

// ConfigPath is the YAML file to load. Empty means built-in defaults.
type ConfigPath string

// App is everything cmd/ballchaser needs to run.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Server *host.Server
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideEventBus,
	ProvideHostConfig,
	host.NewServer,
	wire.Struct(new(App), "*"),
)

func ProvideConfig(path ConfigPath) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(string(path))
}

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.LogLevel())
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

func ProvideHostConfig(cfg *config.Config) host.Config {
	return host.Config{
		ListenAddr:     cfg.Host.ListenAddr,
		Path:           cfg.Host.Path,
		ReadTimeout:    cfg.Host.ReadTimeout,
		WriteTimeout:   cfg.Host.WriteTimeout,
		MaxMessageSize: cfg.Host.MaxMessageSize,
		Overlay:        cfg.Host.Overlay,
		DefaultName:    cfg.Bot.Name,
		Bot:            cfg.BotOptions(),
	}
}
