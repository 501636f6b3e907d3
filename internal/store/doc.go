// Package store provides text-blob persistence for configuration documents.
//
// The core transform and key manager never touch the file system directly;
// they go through a ConfigStore so that callers control where documents
// live and tests can substitute an in-memory implementation.
//
// Failures map to the sentinel errors in internal/errors: ErrNotFound,
// ErrPermissionDenied, and ErrDiskError.
package store
