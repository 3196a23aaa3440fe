// Package config loads and validates the luqy configuration file.
//
// Configuration is TOML, discovered at ~/.config/luqy/config.toml unless an
// explicit path is given. Loading always succeeds in the absence of a file:
// defaults are applied first, then overlaid with whatever the file sets,
// then normalized (path expansion, case folding) and validated.
package config
