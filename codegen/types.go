package codegen

import "github.com/signadot/hrd-format/go-hrd/contract"

// TypeInfo is a contract extracted from Go source.
type TypeInfo struct {
	Type *contract.Type

	// Root marks types that get Serialize and Deserialize functions.
	Root bool

	// FilePath is the source file declaring the type.
	FilePath string
}

// ConstructorInfo is a //hrd:constructor function, before it is
// attached to the type it returns.
type ConstructorInfo struct {
	// TypeName is the type the function returns.
	TypeName    string
	Constructor *contract.Constructor
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files are the .go files of the package carrying hrd markers
	Files []string
}

// Config holds configuration for code generation
type Config struct {
	// OutputFile is the output file for generated Go code (default: <package>_hrd.go)
	OutputFile string

	// Dir is the directory to scan for Go files (default: current directory)
	Dir string

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool

	// Check type checks each package before generating.
	Check bool
}

// GeneratedSuffix is the file name suffix of generated files, which are
// skipped when extracting contracts.
const GeneratedSuffix = "_hrd.go"
