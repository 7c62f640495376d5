// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Task operations are always owner-scoped:
// the filter and key types carry the owning user and implementations refuse
// to run without one.
package store
