// Package common provides shared constants, types, utilities and logging
// used throughout the Styling application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application metadata, scale limits and page dimensions
//   - Errors: sentinel errors for consistent error handling across packages
//   - Logger: levelled logging to stdout with an optional rotated log file
//   - Utils: config and log directory lookup
//
// # Usage
//
//	common.LogInfo("Switched theme to %s", name)
//
//	if errors.Is(err, common.ErrEmptyCatalogue) {
//	    // refuse to start
//	}
package common
