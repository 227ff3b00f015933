// Package core provides a small, stable facade over assat's internal engine
// for programs that want scan results without the CLI. It re-exports a
// narrow API surface so integrations can depend on a stable import path.
//
// Example:
//
//	rep, err := core.Scan(core.Config{Root: "./jadx-out", Set: core.Preferences})
//	if err != nil { /* handle */ }
//	_ = core.Render(os.Stdout, rep, core.RenderOptions{NoColor: true})
package core
