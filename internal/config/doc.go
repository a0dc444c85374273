// Package config loads twr's TOML configuration.
//
// The global config lives at ~/.config/twr/config.toml. A missing file is
// not an error: defaults apply. The TWR_CLIENT environment variable
// overrides the configured client name, which is convenient for trying a
// different client without editing the file.
package config
