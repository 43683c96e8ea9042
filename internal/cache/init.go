package cache

import (
	"github.com/stayrate/stayrate/internal/config"
	"github.com/stayrate/stayrate/internal/logger"
)

// Initialize builds the cache from the application config
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	enabled := cfg == nil || cfg.Cache.Enabled
	log.Infow("initializing cache", "enabled", enabled)
	return NewInMemoryCache(enabled)
}
