// Package config loads the optional mngr.yaml workspace configuration.
// Defaults reproduce the conventional npm monorepo layout (apps/, libs/,
// package-tmpl.json, node_modules) so a workspace without a config file
// behaves exactly like one with an empty file. Values may be overridden
// with MNGR_* environment variables.
package config
