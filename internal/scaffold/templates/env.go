package templates

import (
	"fmt"
	"strings"
)

// EnvVar is one entry of a generated environment file.
type EnvVar struct {
	Key     string
	Value   string
	Comment string // optional, emitted on the preceding line
}

// EnvFile renders variables in declaration order. The variable set is a
// fixed per-framework base unioned with per-flag additions by the caller.
func EnvFile(vars []EnvVar) string {
	var b strings.Builder
	for i, v := range vars {
		if v.Comment != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("# " + v.Comment + "\n")
		}
		fmt.Fprintf(&b, "%s=%s\n", v.Key, v.Value)
	}
	return b.String()
}
