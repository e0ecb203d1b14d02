package ports

import "go.trai.ch/mars/internal/core/domain"

// HostInspector reports facts about the machine mars runs on.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostInspector interface {
	Inspect() domain.HostFacts
}
