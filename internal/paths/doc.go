// Package paths resolves the per-user directories sysdoc reads from.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// The settings file is searched in the working directory first and then in
// [ConfigDir]:
//
//	paths.ConfigDir() // ~/.config/sysdoc on Linux
package paths
