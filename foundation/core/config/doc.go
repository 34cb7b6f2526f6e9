// Package config loads the engine configuration for zunder.
//
// Package: config
// Title: zunder Configuration
// Description: Typed EngineConfig loaded from TOML or YAML files (format
//              detected from the extension), discovered in well-known
//              locations and overridden from ZUNDER_* environment variables.
//              One EngineConfig is handed to each engine run by pointer.
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: TOML/YAML loading, discovery
// - 2026-10-11 v0.2.0: Typed EngineConfig replaces the generic key/value store
package config
