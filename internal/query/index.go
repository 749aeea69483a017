package query

import (
	"context"
	"fmt"
	"math"
)

// index lists every light with its live state, plus the all-lights, presets
// and help entries.
func (in *Interpreter) index(ctx context.Context, cmd Command) []Item {
	rs := newResultSet(in.templates.index, in.icons, DefaultIcon)

	lights, err := in.lights.LiveLights(ctx)
	if err != nil {
		in.logger.Warn("live lights unavailable", "error", err)
	}
	if len(lights) == 0 {
		rs.add("bridge_failed")
		return rs.results()
	}

	rs.add("all_lights")
	rs.narrow(cmd.Partial)

	for _, l := range lights {
		subtitle, icon := "off", in.icons.off()
		if l.State.On {
			subtitle = fmt.Sprintf("hue: %d°, brightness: %d%%",
				int(math.Round(l.State.HueDegrees())),
				int(math.Round(l.State.BrightnessPercent())))
			icon = in.icons.light(l.ID)
		}
		rs.add("",
			withTitle(l.Name),
			withSubtitle(subtitle),
			withValid(false),
			withIcon(icon),
			withAutocomplete(lightCommand(l.ID, "")))
	}

	rs.add("presets")
	rs.add("help")
	return rs.results()
}
