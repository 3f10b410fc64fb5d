// Package style maps entity type strings to marker colors and sizes.
// Known categories use a hand-picked table; anything else falls back to a
// hash-derived palette index so the same type always renders identically,
// within and across sessions, without a registry.
package style

import "strings"

// Spec is the resolved visual style for an entity type.
type Spec struct {
	Color string  `json:"color" yaml:"color"` // hex, e.g. "#4A90D9"
	Size  float64 `json:"size" yaml:"size"`   // marker radius in world units
}

// Marker sizes by rough entity importance.
const (
	SizeSmall  = 4.5
	SizeMedium = 5.5
	SizeLarge  = 7.0
)

// knownTypes is the fixed table of categories the notebook backend commonly
// emits. Lookup is case-insensitive.
var knownTypes = map[string]Spec{
	"person":       {Color: "#4A90D9", Size: SizeLarge},
	"organization": {Color: "#E67E22", Size: SizeLarge},
	"location":     {Color: "#2ECC71", Size: SizeMedium},
	"concept":      {Color: "#9B59B6", Size: SizeSmall},
	"event":        {Color: "#E74C3C", Size: SizeMedium},
	"document":     {Color: "#1ABC9C", Size: SizeMedium},
	"technology":   {Color: "#F39C12", Size: SizeMedium},
	"processor":    {Color: "#3498DB", Size: SizeMedium},
	"product":      {Color: "#D35400", Size: SizeMedium},
	"date":         {Color: "#7F8C8D", Size: SizeSmall},
}

// fallbackPalette is the fixed 20-color palette for unknown types, indexed
// by the rolling hash of the type string.
var fallbackPalette = [20]string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6", "#E74C3C",
	"#1ABC9C", "#F39C12", "#3498DB", "#D35400", "#7F8C8D",
	"#16A085", "#8E44AD", "#C0392B", "#27AE60", "#2980B9",
	"#F1C40F", "#E84393", "#00CEC9", "#6C5CE7", "#FAB1A0",
}

// Resolver resolves entity types to style specs. The zero value uses the
// built-in table; overrides (e.g. from a palette file) may replace or extend
// the known-type table.
type Resolver struct {
	overrides map[string]Spec
}

// NewResolver returns a Resolver with the built-in table only.
func NewResolver() *Resolver {
	return &Resolver{}
}

// WithOverrides returns a Resolver whose override table is consulted before
// the built-in one. Keys are matched case-insensitively.
func WithOverrides(overrides map[string]Spec) *Resolver {
	normalized := make(map[string]Spec, len(overrides))
	for k, v := range overrides {
		normalized[strings.ToLower(k)] = v
	}
	return &Resolver{overrides: normalized}
}

// Resolve returns the style for the given type string. The same input always
// yields the same Spec.
func (r *Resolver) Resolve(entityType string) Spec {
	key := strings.ToLower(entityType)

	if r != nil && r.overrides != nil {
		if spec, ok := r.overrides[key]; ok {
			return spec
		}
	}
	if spec, ok := knownTypes[key]; ok {
		return spec
	}

	return Spec{
		Color: fallbackPalette[PaletteIndex(entityType)],
		Size:  fallbackSize(key),
	}
}

// Hash is the 32-bit order-sensitive rolling hash used for unknown types:
// hash = hash*31 + byte, wrapped to 32 bits.
func Hash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// PaletteIndex returns the fallback palette slot for an unknown type.
func PaletteIndex(entityType string) int {
	return int(Hash(entityType) % uint32(len(fallbackPalette)))
}

// fallbackSize derives a marker size from substring heuristics on the
// lowercased type.
func fallbackSize(lowered string) float64 {
	switch {
	case strings.Contains(lowered, "person"), strings.Contains(lowered, "people"):
		return SizeLarge
	case strings.Contains(lowered, "concept"), strings.Contains(lowered, "idea"):
		return SizeSmall
	default:
		return SizeMedium
	}
}
