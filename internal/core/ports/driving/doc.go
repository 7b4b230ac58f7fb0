// Package driving defines the interfaces external actors use to drive the
// core. The CLI and MCP adapters depend on these, never on service structs.
package driving
