// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mars/internal/core/domain"
)

// Executor defines the interface for running child processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run spawns the invocation with its environment and blocks until it exits.
	//
	// Standard streams are inherited from mars. A non-zero exit is returned as an error
	// carrying the exit code.
	Run(ctx context.Context, inv domain.Invocation) error
}
