// Package templates is the pure text catalog behind project generation.
// Every function maps a small parameter struct (or flag tuple) to a
// complete text blob: a config file, a source file, a README, a CI
// workflow. Functions are deterministic, perform no I/O, and have no
// error returns; an unknown enum value indicates an internal
// inconsistency and panics.
package templates

import (
	"fmt"
	"strings"
)

// SiteSlug strips the npm scope prefix from a project name so it can be
// used in hostnames and database identifiers.
func SiteSlug(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// unknownEnum panics with a uniform message for exhaustive switches over
// closed enumerations. Reaching it is a programming error, not input error.
func unknownEnum(kind string, value any) string {
	panic(fmt.Sprintf("templates: unknown %s %q", kind, value))
}
