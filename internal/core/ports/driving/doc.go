// Package driving defines the interfaces external actors use to drive
// the core (primary ports). The CLI, TUI, and MCP adapters depend on
// these interfaces; core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
