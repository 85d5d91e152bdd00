// Package config defines the project configuration model: the framework
// and package-manager enumerations, the per-framework option records,
// project name validation, and default handling.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrEmptyName indicates the project name is empty.
	ErrEmptyName = errors.New("config: project name is empty")

	// ErrInvalidName indicates the project name violates the npm package name grammar.
	ErrInvalidName = errors.New("config: invalid project name")

	// ErrUnknownFramework indicates an unsupported framework value.
	ErrUnknownFramework = errors.New("config: unknown framework")

	// ErrUnknownPackageManager indicates an unsupported package manager value.
	ErrUnknownPackageManager = errors.New("config: unknown package manager")

	// ErrUnknownDatabase indicates an unsupported database value.
	ErrUnknownDatabase = errors.New("config: unknown database")

	// ErrOptionMismatch indicates the populated option record does not
	// match the selected framework.
	ErrOptionMismatch = errors.New("config: option record does not match framework")
)
