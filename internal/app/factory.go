package app

import (
	"github.com/shadeworks/shade/internal/config"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/paths"
	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/themesource"
	"github.com/shadeworks/shade/internal/ui"
	"github.com/shadeworks/shade/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns the options stored in the config file.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
	}
}

// New creates a new Application with all dependencies wired up. The logger
// becomes the package default and the writer options become the ui defaults,
// so actions built from their own DefaultDeps share them.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		l, err := log.New(paths.LogFilePath(), opts.LogLevel)
		if err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	provider := config.NewProvider()

	// Resolve the theme once so the first line of output already uses it.
	mode := themesource.NewConfig(provider, themesource.WithLogger(logger)).Theme()
	style.Init(opts.StyleEnabled, mode, opts.StyleConfig)

	writerOpts := []ui.WriterOption{ui.WithConfigGetter(config.Get)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	ui.SetDefaultOptions(writerOpts...)

	return &domain.Application{
		Config: provider,
		Logger: logger,
		Output: ui.NewWriter(),
		Styler: style.NewStyler(),
		Theme:  mode,
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses NopLogger, no styling and no pager.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
		Theme:  themectx.Light,
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	log.SetDefault(nil)
	return nil
}
