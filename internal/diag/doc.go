// Package diag provides the structured diagnostic model shared by every
// stage of the Snask compiler front-end.
//
// # Data model
//
// Diagnostic is the central record: a Severity, a stable Code, a message,
// one or more Annotations (each its own span/message/severity), optional
// Notes, and an optional Help string. Producers build one with New or
// NewError and chain WithAnnotation/WithNote/WithHelp before handing it to
// a Reporter.
//
// # Emitting diagnostics
//
// Stages depend on the Reporter interface rather than a concrete sink, so
// the lexer/parser/resolver/analyzer can run against a BagReporter in
// production and a DedupReporter-wrapped BagReporter in tooling that wants
// to collapse repeated findings (e.g. the same missing import reported
// once per importer).
//
// # Consumers
//
//   - internal/hyper decorates a Diagnostic with ranked causes and fixits.
//   - internal/diagfmt renders a Bag of diagnostics to a writer.
//   - internal/explain supplies the human-readable paragraph a diagnostic
//     code expands to.
package diag
