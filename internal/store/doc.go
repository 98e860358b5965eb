// Package store defines the persistence gateway: one collection-oriented
// interface per entity plus shared error sentinels and transaction helpers.
// Implementations live under internal/platform.
package store
