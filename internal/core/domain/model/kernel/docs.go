// Package kernel contains shared value objects used across all aggregates.
// Types in this package are immutable, validated at construction and safe for
// concurrent use.
package kernel
