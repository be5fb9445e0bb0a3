// Package config loads and merges critic configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CRITIC_PROVIDER, CRITIC_MODEL, CRITIC_FORMAT, ...),
//     including any set by a .env file in the working directory
//  3. Config file ($XDG_CONFIG_HOME/critic/config.toml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
