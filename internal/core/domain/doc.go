// Package domain defines the core business entities for Caselens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CaseDocument: An extracted case document supplied by a collaborator
//   - Domain: A fixed substantive category for grouping case evidence
//   - DomainSummary: The per-domain evidentiary summary
//   - RoleLens: A role-specific prioritised view over the domain summaries
//   - LayeredSummary: The immutable aggregate returned to callers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
