package assat

import (
	"strings"

	"github.com/spf13/cobra"
)

// Settings resolve CLI > local config > global config.

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// pickFlagBool resolves a bool option. The CLI value only wins when the flag
// was set explicitly, so --nocolor=false can override no_color: true.
func pickFlagBool(cmd *cobra.Command, name string, cli bool, local, global *bool) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func int64Ptr(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
