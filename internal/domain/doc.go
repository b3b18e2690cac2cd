// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/action).
// This root package holds the sentinel errors and the typed error taxonomy
// (validation, not found, storage) that every layer classifies failures into.
package domain
