// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, default locations, and other values that
// should be consistent across the library and the CLI.
package constants

// Application identity
const (
	// AppName is the binary and config file base name
	AppName = "bookshelf"

	// EnvPrefix is the prefix for bookshelf-specific environment variables
	EnvPrefix = "BOOKSHELF"
)

// Storage constants
const (
	// DefaultLibraryFile is the storage location used when none is configured
	DefaultLibraryFile = "library.json"

	// JSONIndent is the indentation of the persisted JSON catalog
	JSONIndent = "    "

	// YAMLIndent is the indentation width of the persisted YAML catalog
	YAMLIndent = 2

	// TempFilePattern names the scratch file written before an atomic rename
	TempFilePattern = ".library-*.tmp"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Book field constraints
const (
	// YearLength is the exact number of digits a year must have
	YearLength = 4
)
