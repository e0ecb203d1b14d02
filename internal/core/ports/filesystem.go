package ports

// Prober defines the read-only filesystem checks used while planning.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Prober interface {
	// Exists reports whether path exists.
	Exists(path string) bool
}

// ToolchainSource provides the pinned rust toolchain of a checkout.
type ToolchainSource interface {
	// Toolchain returns the content of <root>/rust-toolchain without surrounding whitespace.
	Toolchain(root string) (string, error)
}
