package platform

// Package platform contains OS-specific helpers: locating the per-user
// configuration directory and creating directories on demand.
