// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [DirectoryLister]: lists entry names of a directory
//   - [Renamer]: renames an entry within a directory without overwriting
//   - [ReportStore]: persists the summary of a pass
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters, pkg/report, pkg/log) implement
// them against the local file system and zerolog.
package ports
