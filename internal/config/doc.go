// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for deployment
// construction. Concrete Loader implementations, one per file format, live
// in separate packages (yamlcfg, hclcfg).
package config
