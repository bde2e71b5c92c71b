// Package kernel contains shared value objects used across all domain
// aggregates: identifiers and monetary amounts. Every type here is immutable,
// validated on construction, and safe for concurrent use.
package kernel
