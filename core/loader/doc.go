// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, says whether
// it is enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads enabled features in registration order
// via LoadAll. The 'manifest' and 'integrity' features are registered by the start command.
package loader
