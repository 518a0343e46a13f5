// Package kernel contains shared value objects used across aggregates:
// UUID identities for accounts and StorageRef handles for uploaded files.
// Value objects here are immutable and safe for concurrent use.
package kernel
