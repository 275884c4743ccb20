package config

import "go.uber.org/fx"

var Module = WithFile("")

// WithFile is Module bound to an explicit config file path.
func WithFile(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(func() *Loader { return NewFileLoader(path) }),
		fx.Provide(func(l *Loader) (Config, error) {
			return l.Load()
		}),
	)
}
