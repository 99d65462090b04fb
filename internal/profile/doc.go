// Package profile maps host profile identifiers to the check pairs built for
// them.
//
// Profiles register themselves in the process-wide registry from init
// functions. A run selects exactly one profile:
//
//	pairs, err := profile.Build(profile.Options{
//	    System:     "linux_custom",
//	    ConfigFile: "/etc/sysdoc/host.yaml",
//	    Categories: profile.DefaultCategories(),
//	})
//
// An unknown profile, or a profile whose prerequisites are missing, yields a
// configuration error before any data source is evaluated.
package profile
