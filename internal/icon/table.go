package icon

// Fallback is returned for domains without a table entry.
const Fallback = "mdi:help-circle"

type domainIcons struct {
	byDeviceClass map[string]string
	fallback      string
}

var defaults = map[string]domainIcons{
	"sensor": {
		byDeviceClass: map[string]string{
			"temperature":                      "mdi:thermometer",
			"humidity":                         "mdi:water-percent",
			"carbon_dioxide":                   "mdi:molecule-co2",
			"co2":                              "mdi:molecule-co2",
			"pressure":                         "mdi:gauge",
			"power":                            "mdi:flash",
			"energy":                           "mdi:flash",
			"signal_strength":                  "mdi:wifi",
			"volatile_organic_compounds":       "mdi:chemical-weapon",
			"volatile_organic_compounds_parts": "mdi:chemical-weapon",
			"pm1":                              "mdi:blur",
			"pm10":                             "mdi:blur",
			"pm25":                             "mdi:blur",
			"timestamp":                        "mdi:clock-outline",
		},
		fallback: "mdi:gauge",
	},
	"binary_sensor": {
		byDeviceClass: map[string]string{
			"motion":   "mdi:motion-sensor",
			"door":     "mdi:door-closed",
			"window":   "mdi:window-closed",
			"smoke":    "mdi:smoke-detector",
			"heat":     "mdi:thermometer",
			"cold":     "mdi:thermometer",
			"moisture": "mdi:water-alert",
		},
		fallback: "mdi:radiobox-blank",
	},
	"light":   {fallback: "mdi:lightbulb"},
	"switch":  {fallback: "mdi:toggle-switch"},
	"climate": {fallback: "mdi:thermostat"},
	"fan":     {fallback: "mdi:fan"},
}

// Default returns the table icon for a domain and device class.
// Device classes are matched exactly; unknown ones get the domain's fallback.
func Default(domain, deviceClass string) string {
	icons, ok := defaults[domain]
	if !ok {
		return Fallback
	}
	if icon, ok := icons.byDeviceClass[deviceClass]; ok {
		return icon
	}
	return icons.fallback
}
