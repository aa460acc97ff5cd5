// Package cisco turns a stored port role into the literal IOS command
// block an operator pastes into config terminal. Rendering is pure and
// total: unknown roles degrade to a header-only block, never an error.
package cisco

import (
	"fmt"
	"sort"
	"strings"
)

// Roles a caller may store without getting an empty or header-only block.
// "reset" and "none" are special-cased in Render and not part of the catalog.
func Roles() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render emits the config block for one port. Output lines are joined
// with "\n" and carry no trailing newline; bulk generation owns the
// blank separators between ports.
//
//   - "reset":  bounce the port in place, no defaulting, closed with "!"
//   - "none":   nothing at all — the caller is expected to skip the port
//   - other:    "default interface" header, then the catalog body (empty
//     for unknown roles), then the bounce trailer when the role carries one
func Render(portName, configType string) string {
	if configType == "reset" {
		return strings.Join([]string{
			fmt.Sprintf("interface %s", portName),
			"shutdown",
			"no shutdown",
			"exit",
			"!",
		}, "\n")
	}
	if configType == "none" {
		return ""
	}

	lines := []string{
		fmt.Sprintf("default interface %s", portName),
		fmt.Sprintf("interface %s", portName),
	}
	r, ok := catalog[configType]
	if !ok {
		// Unknown role: header only. Kept lenient so that a stale
		// config_type in the registry cannot break bulk generation.
		return strings.Join(lines, "\n")
	}
	lines = append(lines, r.statements...)
	if r.bounce {
		lines = append(lines, "shutdown", "no shutdown", "exit")
	}
	return strings.Join(lines, "\n")
}
