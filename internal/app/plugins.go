package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/plugins/geostats"
)

// pluginConstructors lists the built-in plugins.
var pluginConstructors = []func() plugin.Plugin{
	geostats.New,
}

// registerPlugins creates and registers every built-in plugin. Failures are
// logged and the rest are still registered.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return errors.New("plugin manager is nil")
	}

	var errs []error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrapped := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrapped)
			errs = append(errs, wrapped)
		}
	}
	return errors.Join(errs...)
}
