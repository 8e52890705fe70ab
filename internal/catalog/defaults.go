package catalog

import "github.com/olivier-w/rope/internal/carousel"

// Default returns the built-in mock sensor ring, focused on the bilge.
func Default() Catalog {
	return Catalog{
		Default: "bilge",
		Systems: []carousel.System{
			{ID: "bilge", Label: "BILGE", Status: "Normal", Value: "0.2L", Icon: "◉", Anchor: [3]float64{0.2, 0.1, 0},
				Notes: "Bilge pump **idle**. Float switch dry.\n\n- Last cycle: 06:40\n- Pump runtime today: 12s"},
			{ID: "battery", Label: "BATTERY", Status: "Charging", Value: "87%", Icon: "▣", Anchor: [3]float64{0, -0.1, 0.2},
				Notes: "House bank **charging** from shore power.\n\n- 13.4V\n- +18A"},
			{ID: "smoke", Label: "SMOKE", Status: "Clear", Value: "0 PPM", Icon: "◐", Anchor: [3]float64{-0.2, 0.15, 0.1},
				Notes: "Saloon and engine room detectors clear."},
			{ID: "heat", Label: "HEAT", Status: "Normal", Value: "22°C", Icon: "◈", Anchor: [3]float64{0.1, 0.2, -0.1},
				Notes: "Engine room heat sensor within range."},
			{ID: "gps", Label: "GPS LOCATOR", Status: "Connected", Value: "12 Sats", Icon: "◊", Anchor: [3]float64{-0.1, 0.05, -0.2},
				Notes: "Fix **3D**, HDOP 0.8.\n\nAnchor watch radius 30m."},
			{ID: "shore", Label: "SHORE POWER", Status: "Connected", Value: "240V", Icon: "◘", Anchor: [3]float64{0.3, 0.05, 0.1},
				Notes: "Shore supply 240V / 50Hz, 16A inlet."},
			{ID: "generator", Label: "IGNITION GENERATOR", Status: "Running", Value: "1500 RPM", Icon: "◙", Anchor: [3]float64{-0.3, 0.1, 0.05},
				Notes: "Generator running at **1500 RPM**.\n\n- Coolant 78°C\n- Oil pressure nominal"},
			{ID: "temperature", Label: "TEMPERATURE", Status: "Normal", Value: "22°C", Icon: "◈", Anchor: [3]float64{0.15, 0.25, -0.15},
				Notes: "Cabin temperature."},
			{ID: "humidity", Label: "HUMIDITY", Status: "Normal", Value: "65%", Icon: "◉", Anchor: [3]float64{-0.15, 0.2, 0.15},
				Notes: "Relative humidity, saloon."},
			{ID: "ac", Label: "AIR CONDITIONING", Status: "Active", Value: "Auto", Icon: "◐", Anchor: [3]float64{0.25, 0.15, -0.25},
				Notes: "Climate control in **auto**, setpoint 21°C."},
			{ID: "motion", Label: "MOTION", Status: "Clear", Value: "No Motion", Icon: "◊", Anchor: [3]float64{-0.25, 0.3, 0.2},
				Notes: "Cockpit and deck motion sensors clear."},
			{ID: "hatch", Label: "HATCH", Status: "Closed", Value: "Secure", Icon: "◘", Anchor: [3]float64{0.1, 0.35, 0.05},
				Notes: "All deck hatches closed."},
			{ID: "movement", Label: "MOVEMENT", Status: "Stable", Value: "0.1°", Icon: "◙", Anchor: [3]float64{-0.1, 0.05, 0.3},
				Notes: "Hull heel and pitch within 0.1°."},
			{ID: "door", Label: "DOOR", Status: "Locked", Value: "Secure", Icon: "▣", Anchor: [3]float64{0.35, 0.1, -0.1},
				Notes: "Companionway door locked."},
		},
	}
}

// Primary is one of the headline systems shown in the chip row. Hotspot is
// where it is marked on the hull, in model space.
type Primary struct {
	Key     string
	Label   string
	Color   string
	Icon    string
	Hotspot [3]float64
}

// Primaries returns the headline systems in display order.
func Primaries() []Primary {
	return []Primary{
		{Key: "energy", Label: "Energy", Color: "#00BFA6", Icon: "⚡", Hotspot: [3]float64{-0.15, 0.05, 0}},
		{Key: "tanks", Label: "Tanks", Color: "#23D6C4", Icon: "≈", Hotspot: [3]float64{0, -0.08, 0.02}},
		{Key: "security", Label: "Security", Color: "#2BE9D2", Icon: "⛨", Hotspot: [3]float64{0.3, 0.2, 0.1}},
		{Key: "anchor", Label: "Anchor", Color: "#42F5DD", Icon: "⚓", Hotspot: [3]float64{0.55, 0.05, -0.15}},
		{Key: "environment", Label: "Environment", Color: "#00BFA6", Icon: "☼", Hotspot: [3]float64{-0.4, 0.25, 0.05}},
		{Key: "alerts", Label: "Alerts", Color: "#00BFA6", Icon: "!", Hotspot: [3]float64{0, 0.3, 0}},
	}
}

// PrimarySystems adapts the headline systems to carousel systems so the chip
// row can be navigated like the ring. Hotspots become anchors.
func PrimarySystems() []carousel.System {
	ps := Primaries()
	out := make([]carousel.System, len(ps))
	for i, p := range ps {
		out[i] = carousel.System{ID: p.Key, Label: p.Label, Icon: p.Icon, Anchor: p.Hotspot}
	}
	return out
}
