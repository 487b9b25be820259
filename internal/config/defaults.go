package config

const (
	defaultConfigPath         = "~/.config/dearchive/config.toml"
	defaultArchiveDir         = "~/.local/share/dearchive/archive"
	defaultCatalogPath        = "~/.local/share/dearchive/catalog.db"
	defaultIndent             = 4
	defaultCatalogWorkers     = 4
	defaultCatalogSearchLimit = 50
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ArchiveDir:  defaultArchiveDir,
			CatalogPath: defaultCatalogPath,
		},
		Output: Output{
			Indent: defaultIndent,
		},
		Catalog: Catalog{
			Workers:     defaultCatalogWorkers,
			SearchLimit: defaultCatalogSearchLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
