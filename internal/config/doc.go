// Package config loads sysdoc's two configuration layers.
//
// # Settings
//
// Application settings (default profile, categories, log level, parallelism)
// are resolved by Viper from, in increasing precedence: defaults, the
// settings file sysdoc.yaml in the working directory or ~/.config/sysdoc,
// SYSDOC_* environment variables, and command line flags.
//
//	system: linux_custom
//	categories: [cpu, memory]
//	log_level: info
//
// # Host config document
//
// Profiles without hard coded thresholds read them from the document named
// by --config. The encoding follows the extension: .yaml and .yml are YAML,
// .toml is TOML, anything else is JSON.
//
//	{
//	  "cpu": {"core_count": {"num_cores": 4}},
//	  "disk": {"percent_free": [{"filesystem": "/", "percent": 5}]},
//	  "memory": {"physical_size": {"mem_size": 8589934592, "tolerance": 1048576}},
//	  "performance": {"stream": {"triad": 12000}}
//	}
//
// [LoadDocument] validates the document and marks every failure with
// errors.ErrConfig.
package config
