package engine

import (
	"os"
)

// RootProvider supplies the ordered list of root paths to scan. The
// engine treats each root as independent and processes them in the given
// order; deciding what counts as a scannable root is the provider's job.
type RootProvider interface {
	Roots() ([]string, error)
}

// StaticRoots is a fixed, pre-validated list of roots.
type StaticRoots []string

func (s StaticRoots) Roots() ([]string, error) {
	return s, nil
}

// HomeRoot resolves the current user's home directory as the single
// default root. Used when no roots are configured.
type HomeRoot struct{}

func (HomeRoot) Roots() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return []string{home}, nil
}

// ResolveRoots picks explicit roots when given, falling back to the
// provider. Roots that do not exist are kept: the engine logs and skips
// unreachable roots itself so one bad entry never hides the rest.
func ResolveRoots(explicit []string, provider RootProvider) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if provider == nil {
		provider = HomeRoot{}
	}
	return provider.Roots()
}
