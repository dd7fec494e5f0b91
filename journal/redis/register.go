package redis

import (
	"github.com/ajiwo/crptgate/journal"
)

func init() {
	journal.Register("redis", func(config any) (journal.Backend, error) {
		cfg, ok := config.(Config)
		if !ok {
			return nil, ErrInvalidConfig
		}
		return New(cfg)
	})
}
