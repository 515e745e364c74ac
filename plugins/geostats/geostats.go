// plugins/geostats/geostats.go
package geostats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/internal/types"
)

var _ plugin.Plugin = (*GeoStats)(nil)

var errNotInitialized = errors.New("geostats plugin not initialized with API")

// GeoStats reports terrain counts for a layer together with journal depth.
type GeoStats struct {
	api plugin.EditorAPI
}

func New() plugin.Plugin {
	return &GeoStats{}
}

func (p *GeoStats) Name() string {
	return "geostats"
}

// Initialize registers :stats.
func (p *GeoStats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

func (p *GeoStats) Shutdown() error {
	return nil
}

// executeStats handles ":stats [layer]". Without an argument it reports the
// cursor layer. Layers are 1-based on the command line.
func (p *GeoStats) executeStats(args []string) error {
	if p.api == nil {
		return errNotInitialized
	}

	layer := p.api.GetCursor().Layer
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > types.LayerCount {
			return fmt.Errorf("stats: layer must be 1-%d, got '%s'", types.LayerCount, args[0])
		}
		layer = n - 1
	}

	p.api.SetStatusMessage("%s", Summary(layer, p.api.CountCells(layer), p.api.HistoryState()))
	return nil
}

// Summary formats counts in terrain order, skipping kinds that do not occur.
func Summary(layer int, counts map[geo.GeoType]int, hs plugin.HistoryState) string {
	parts := make([]string, 0, len(counts))
	for _, t := range geo.GeoTypes {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", t, n))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "empty")
	}
	return fmt.Sprintf("L%d: %s | history %d/%d (cap %d)",
		layer+1, strings.Join(parts, ", "), hs.Cursor+1, hs.Len, hs.Capacity)
}
