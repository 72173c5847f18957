// Package icons defines the closed sets of presentation tags the API accepts.
// Icon and gradient names are stored as plain strings but validated against a
// fixed vocabulary at the write path, so an unknown tag is rejected with a
// 400 instead of silently falling back to a default on render.
package icons

// icon tags understood by the frontends
var iconTags = map[string]bool{
	"speedboat":  true,
	"ferry":      true,
	"seaplane":   true,
	"plane":      true,
	"anchor":     true,
	"map-pin":    true,
	"clock":      true,
	"wallet":     true,
	"phone":      true,
	"mail":       true,
	"whatsapp":   true,
	"calendar":   true,
	"users":      true,
	"shield":     true,
	"star":       true,
	"luggage":    true,
	"sun":        true,
	"waves":      true,
	"compass":    true,
	"life-buoy":  true,
	"info":       true,
	"check":      true,
	"ticket":     true,
	"navigation": true,
}

// gradient tags used for card backgrounds
var gradientTags = map[string]bool{
	"ocean":    true,
	"lagoon":   true,
	"sunset":   true,
	"sunrise":  true,
	"coral":    true,
	"palm":     true,
	"sand":     true,
	"midnight": true,
}

// transfer type vocabulary for resort pricing rows
var transferTypes = map[string]bool{
	"speedboat":       true,
	"ferry":           true,
	"seaplane":        true,
	"domestic_flight": true,
}

// ValidIcon reports whether tag is a known icon. The empty string is allowed
// so records without an icon stay valid.
func ValidIcon(tag string) bool {
	return tag == "" || iconTags[tag]
}

// ValidGradient reports whether tag is a known gradient. Empty is allowed.
func ValidGradient(tag string) bool {
	return tag == "" || gradientTags[tag]
}

// ValidTransferType reports whether v is one of the resort transfer modes.
// Unlike icons, the transfer type is required.
func ValidTransferType(v string) bool {
	return transferTypes[v]
}
