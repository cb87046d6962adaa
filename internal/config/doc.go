// Package config provides the editor configuration.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← QUILL_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/quill/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Flags are applied by the caller on the returned Config before Validate.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable sources
//   - watcher: live reload of the config file
package config
