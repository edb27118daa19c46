// Package theme carries the app color palette and the high-contrast
// derivation applied on top of it.
package theme

import "educagenda/internal/agenda"

// Palette mirrors the app's base theme. Cat maps each event category to
// its card color.
type Palette struct {
	Bg        string `json:"bg"`
	Text      string `json:"text"`
	Muted     string `json:"muted"`
	White     string `json:"white"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Highlight string `json:"highlight"`

	GradStart string `json:"grad_start"`
	GradEnd   string `json:"grad_end"`

	Cat map[agenda.Category]string `json:"cat"`

	Danger string `json:"danger"`
}

// Base returns the default palette.
func Base() Palette {
	return Palette{
		Bg:        "#F5F7FB",
		Text:      "#1F2937",
		Muted:     "#6B7280",
		White:     "#FFFFFF",
		Primary:   "#928992",
		Secondary: "#424B54",
		Highlight: "#3C00EE",
		GradStart: "#3EC3FF",
		GradEnd:   "#8B5CF6",
		Cat: map[agenda.Category]string{
			agenda.CategoryPersonal:  "#FBBF24",
			agenda.CategoryWork:      "#60A5FA",
			agenda.CategoryHealth:    "#F472B6",
			agenda.CategoryEducation: "#34D399",
			agenda.CategoryOther:     "#A78BFA",
		},
		Danger: "#FF3B30",
	}
}

// Derive returns the effective palette for the given contrast setting.
// With high contrast on, a fixed override set replaces the foreground and
// background entries; otherwise the base comes back unchanged. Pure: the
// input palette is never mutated.
func Derive(base Palette, highContrast bool) Palette {
	out := base
	out.Cat = make(map[agenda.Category]string, len(base.Cat))
	for k, v := range base.Cat {
		out.Cat[k] = v
	}

	if !highContrast {
		return out
	}

	out.Primary = "#0000FF"
	out.Text = "#000000"
	out.White = "#FFFFFF"
	out.Bg = "#FFFFFF"
	out.Muted = "#111111"
	return out
}
