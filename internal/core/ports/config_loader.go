package ports

import "go.trai.ch/mars/internal/core/domain"

// ConfigLoader defines the interface for locating the checkout and reading .servobuild.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// DiscoverRoot walks up from cwd to the root of the servo checkout.
	DiscoverRoot(cwd string) (string, error)

	// Load reads the persisted configuration below root.
	//
	// A missing or malformed file yields the zero PersistedConfig; it is never an error.
	Load(root string) domain.PersistedConfig
}
