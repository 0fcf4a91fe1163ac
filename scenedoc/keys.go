package scenedoc

import "strings"

// snakeToCamel maps every recognized snake_case style/node key onto its
// camelCase equivalent, for the snake_case spellings that appear in the
// document format (§6). Keys already in camelCase need no entry; a
// snake_case key missing from this table is converted by toCamelCase,
// which gives the same result for every entry listed here.
var snakeToCamel = map[string]string{
	"background_color": "backgroundColor",
	"border_radius":    "borderRadius",
	"border_color":     "borderColor",
	"border_width":     "borderWidth",
	"blend_mode":       "blendMode",
	"mask_mode":        "maskMode",
	"flex_grow":        "flexGrow",
	"flex_direction":   "flexDirection",
	"flex_shrink":      "flexShrink",
	"aspect_ratio":     "aspectRatio",
	"z_index":          "zIndex",
	"line_cap":         "lineCap",
	"line_join":        "lineJoin",
	"dash_array":       "dashArray",
	"dash_offset":      "dashOffset",
	"font_size":        "fontSize",
	"font_family":      "fontFamily",
	"text_align":       "textAlign",
	"line_height":      "lineHeight",
	"letter_spacing":   "letterSpacing",
	"object_fit":       "objectFit",
	"shadow_color":     "shadowColor",
	"shadow_blur":      "shadowBlur",
	"shadow_offset_x":  "shadowOffsetX",
	"shadow_offset_y":  "shadowOffsetY",
	"skew_x":           "skewX",
	"skew_y":           "skewY",
	"rotate":           "rotate",
}

// normalizeKeys walks a decoded JSON value (map[string]any / []any / scalar)
// recursively, renaming any recognized snake_case map key to its camelCase
// form. It applies uniformly to node-level and nested style/gradient/shadow
// objects since none of those key vocabularies overlap.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key := k
			if camel, ok := snakeToCamel[k]; ok {
				key = camel
			} else if looksSnakeCase(k) {
				key = toCamelCase(k)
			}
			out[key] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return v
	}
}

func looksSnakeCase(k string) bool {
	return strings.Contains(k, "_")
}

// toCamelCase is the fallback for a snake_case key this package's explicit
// table doesn't name (gradient stop fields, inset sides, and similar),
// following the same underscore-joins-word convention as the table above.
func toCamelCase(k string) string {
	parts := strings.Split(k, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
