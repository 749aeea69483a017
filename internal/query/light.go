package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cristianoliveira/alfred-hue/internal/domain"
)

const (
	ellipsis  = "…"
	whiteHex  = "ffffff"
	allLights = "All lights"
)

// maxReminder keeps n*seconds of the largest unit within int range.
const maxReminder = math.MaxInt / (60 * 60)

// reminderUnits are the delays offered for a reminder, in seconds per unit.
var reminderUnits = []struct {
	name    string
	seconds int
}{
	{"seconds", 1},
	{"minutes", 60},
	{"hours", 60 * 60},
}

// Light builds the action menu of a light, or the sub-form of the function
// selected in sub. light is nil when the light is unknown; lid may be "all".
func (in *Interpreter) Light(lid string, light *domain.Light, sub string) []Item {
	isAll := lid == domain.AllLightsID
	isOn := light != nil && light.State.On
	name := displayName(lid, light)

	icon := DefaultIcon
	if !isAll {
		icon = in.icons.off()
		if isOn {
			icon = in.icons.light(lid)
		}
	}
	rs := newResultSet(in.templates.lights, in.icons, icon)

	q := ParseLightQuery(sub)
	switch q.Function {
	case FuncColor:
		in.colorForm(rs, lid, light, q.Value)
	case FuncBri:
		brightnessForm(rs, lid, q.Value)
	case FuncEffect:
		rs.add("effect_none", withArg(lightCommand(lid, FuncEffect, "none")))
		rs.add("color_loop", withArg(lightCommand(lid, FuncEffect, "colorloop")))
	case FuncReminder:
		reminderForm(rs, lid, name, q.Value)
	case FuncRename:
		title := "Set light name to " + q.Value
		if q.Value == "" {
			title = "Set light name to" + ellipsis
		}
		rs.add("light_rename",
			withTitle(title),
			withValid(true),
			withArg(lightCommand(lid, FuncRename, q.Value)))
	default:
		if q.Menu() {
			rs.narrow(q.Partial)
		} else {
			in.logger.Debug("unknown light function", "function", q.Function)
		}
		lightMenu(rs, lid, light, name)
	}
	return rs.results()
}

func displayName(lid string, light *domain.Light) string {
	switch {
	case lid == domain.AllLightsID:
		return allLights
	case light != nil:
		return light.Name
	default:
		return "Light " + lid
	}
}

// lightMenu lists the actions available for the light. An unknown light only
// offers renaming: its on/off state cannot be told apart.
func lightMenu(rs *resultSet, lid string, light *domain.Light, name string) {
	isAll := lid == domain.AllLightsID
	isOn := light != nil && light.State.On

	if isAll {
		rs.add("all_off", withArg(lightCommand(lid, "off")))
		rs.add("all_on", withArg(lightCommand(lid, "on")))
	}

	switch {
	case isOn:
		rs.add("light_off",
			withTitle(fmt.Sprintf("Turn %s off", name)),
			withArg(lightCommand(lid, "off")))
	case light != nil:
		rs.add("light_on",
			withTitle(fmt.Sprintf("Turn %s on", name)),
			withArg(lightCommand(lid, "on")))
	}

	if isOn || isAll {
		rs.add("set_color", withSubtitle(""), withAutocomplete(lightCommand(lid, FuncColor, "")))
		rs.add("set_effect", withSubtitle(""), withAutocomplete(lightCommand(lid, FuncEffect, "")))
		rs.add("set_brightness", withSubtitle(""), withAutocomplete(lightCommand(lid, FuncBri, "")))
		rs.add("set_reminder", withAutocomplete(lightCommand(lid, FuncReminder, "")))
	}

	if !isAll {
		rs.add("light_rename", withAutocomplete(lightCommand(lid, FuncRename, "")))
	}
}

func (in *Interpreter) colorForm(rs *resultSet, lid string, light *domain.Light, value string) {
	current := whiteHex
	if lid != domain.AllLightsID && light != nil {
		current = in.colors.XYToHex(light.State.XY[0], light.State.XY[1], light.State.Bri)
	}
	rs.add("set_color", withValid(true), withArg(lightCommand(lid, FuncColor, value)))
	rs.add("color_picker", withArg("colorpicker:"+lid+":"+current))
}

func brightnessForm(rs *resultSet, lid, value string) {
	scaled, label, ok := parseBrightness(value)
	rs.add("set_brightness",
		withTitle("Set brightness to "+label),
		withValid(ok),
		withArg(lightCommand(lid, FuncBri, strconv.Itoa(scaled))))
}

// parseBrightness converts a 0-100 percentage to the bridge's 0-255 scale.
// Empty or non-numeric input yields full brightness and ok == false.
func parseBrightness(value string) (scaled int, label string, ok bool) {
	v := strings.TrimSpace(value)
	pct, err := strconv.ParseFloat(v, 64)
	if v == "" || err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return domain.MaxBrightness, ellipsis, false
	}
	// clamp before converting: huge floats do not fit an int
	f := math.Max(0, math.Min(pct/100*domain.MaxBrightness, domain.MaxBrightness))
	return int(math.Round(f)), v + "%", true
}

func reminderForm(rs *resultSet, lid, name, value string) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n > maxReminder || n < -maxReminder {
		n = 0
	}
	delay := ellipsis
	if n != 0 {
		delay = strconv.Itoa(n)
	}
	for _, unit := range reminderUnits {
		rs.add("reminder",
			withTitle(fmt.Sprintf("Blink %s in %s %s", name, delay, unit.name)),
			withValid(n != 0),
			withArg(lightCommand(lid, FuncReminder, strconv.Itoa(n*unit.seconds))))
	}
}
