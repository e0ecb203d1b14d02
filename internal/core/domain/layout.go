package domain

const (
	// ConfigFileName is the name of the persisted configuration file at the repository root.
	ConfigFileName = ".servobuild"

	// RootMarkerFileName marks the root of a servo checkout.
	RootMarkerFileName = "servobuild.example"

	// ToolchainFileName pins the rust toolchain used for the build.
	ToolchainFileName = "rust-toolchain"

	// CacheDirName is the default cache directory below the repository root.
	CacheDirName = ".servo"

	// CargoHomeDirName is the default cargo home below the repository root.
	CargoHomeDirName = ".cargo"

	// TargetDirName is the default cargo target directory below the repository root.
	TargetDirName = "target"

	// BinaryName is the name of the produced executable.
	BinaryName = "servo"

	// PortsDirName holds the cargo manifests of every embedding.
	PortsDirName = "ports"

	// ManifestFileName is the cargo manifest name.
	ManifestFileName = "Cargo.toml"
)
