package memory

import (
	"github.com/ajiwo/crptgate/journal"
)

func init() {
	journal.Register("memory", func(config any) (journal.Backend, error) {
		// Nil config selects the default capacity.
		if config == nil {
			return New(Config{})
		}
		cfg, ok := config.(Config)
		if !ok {
			return nil, journal.ErrInvalidConfig
		}
		return New(cfg)
	})
}
