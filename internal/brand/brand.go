package brand

import (
	"os"
	"strings"

	"pashen/inventory-console/internal/localstate"
)

const (
	laiShenName = "来甚库存管理"
	defaultName = "帕神库存管理"
)

// Brand is the resolved cosmetic brand flag.
type Brand struct {
	flag string
}

// Resolve reads the version flag from persisted storage first, then the
// environment, compared case-insensitively. The storage may be nil.
func Resolve(state *localstate.Store) Brand {
	var flag string

	if state != nil {
		for _, key := range []string{"version", "VERSION", "VITE_VERSION"} {
			if value := state.Get(key); value != "" {
				flag = value
				break
			}
		}
	}

	if flag == "" {
		for _, key := range []string{"VERSION", "version"} {
			if value := os.Getenv(key); value != "" {
				flag = value
				break
			}
		}
	}

	return Brand{flag: strings.ToLower(flag)}
}

func (b Brand) IsLaiShen() bool {
	return b.flag == "ls"
}

func (b Brand) Name() string {
	if b.IsLaiShen() {
		return laiShenName
	}
	return defaultName
}
