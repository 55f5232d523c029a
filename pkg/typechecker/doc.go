// Package typechecker implements the Decaf static semantics. It runs a
// symbol pass that builds scopes, declares classes and members and checks
// the inheritance graph, then a type pass that types every expression,
// enforces the statement rules and the return analysis. Results are side
// tables keyed by syntax node plus a list of diagnostics; the tree itself
// is never modified, so a checked program can be shared freely.
package typechecker
