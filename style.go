package mdview

import "strings"

// StyleObject is an open set of style properties for one node type. Values
// are host-defined; this package only merges and filters them.
type StyleObject map[string]any

// Clone returns an independent shallow copy.
func (s StyleObject) Clone() StyleObject {
	if s == nil {
		return nil
	}
	out := make(StyleObject, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new object holding s overlaid with over; over wins
// per property.
func (s StyleObject) Merge(over StyleObject) StyleObject {
	out := make(StyleObject, len(s)+len(over))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// StyleTable maps node-type keys to style objects. For every base key a
// parallel view-safe entry is stored under ViewSafePrefix with text-only
// properties removed, for container outputs that cannot carry text styling.
type StyleTable map[string]StyleObject

// ViewSafePrefix prefixes the container-safe variant of each style key.
const ViewSafePrefix = "_VIEW_SAFE_"

// textOnlyProps are meaningful only on text outputs and are stripped from
// the view-safe variants.
var textOnlyProps = map[string]struct{}{
	"fontFamily":         {},
	"fontWeight":         {},
	"fontStyle":          {},
	"textDecorationLine": {},
	"letterSpacing":      {},
	"lineHeight":         {},
}

// ViewSafe returns the container-safe style for key, falling back to an
// on-the-fly strip when the derived entry is absent.
func (t StyleTable) ViewSafe(key string) StyleObject {
	if s, ok := t[ViewSafePrefix+key]; ok {
		return s
	}
	return stripTextProps(t[key])
}

// ResolveStyles combines the default table with a caller override.
//
// With merge set, every default entry is shallow-merged with its override
// (override wins per property); keys present only in the override are kept
// as-is. Without merge, an overridden key replaces the default entry
// entirely and untouched defaults pass through. The returned table carries
// the derived view-safe entries for every resulting base key.
func ResolveStyles(defaults StyleTable, override StyleTable, merge bool) StyleTable {
	resolved := make(StyleTable, 2*(len(defaults)+len(override)))
	for key, def := range defaults {
		if strings.HasPrefix(key, ViewSafePrefix) {
			continue
		}
		over, overridden := override[key]
		switch {
		case !overridden:
			resolved[key] = def.Clone()
		case merge:
			resolved[key] = def.Merge(over)
		default:
			resolved[key] = over.Clone()
		}
	}
	for key, over := range override {
		if strings.HasPrefix(key, ViewSafePrefix) {
			continue
		}
		if _, seen := resolved[key]; !seen {
			resolved[key] = over.Clone()
		}
	}
	for key, s := range resolved {
		if strings.HasPrefix(key, ViewSafePrefix) {
			continue
		}
		resolved[ViewSafePrefix+key] = stripTextProps(s)
	}
	return resolved
}

func stripTextProps(s StyleObject) StyleObject {
	out := make(StyleObject, len(s))
	for k, v := range s {
		if _, textOnly := textOnlyProps[k]; textOnly {
			continue
		}
		out[k] = v
	}
	return out
}
