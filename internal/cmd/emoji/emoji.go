// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added and removed books, finished exports.
	Success = "✓"

	// Info represents informational messages.
	// Used for: empty listings, empty search results.
	Info = "i"

	// Read marks a book that has been read.
	Read = "✅"

	// Unread marks a book that has not been read.
	Unread = "❌"
)
