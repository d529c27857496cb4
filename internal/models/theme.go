package models

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeWinter Theme = "winter"
	ThemeSummer Theme = "summer"
)

// DefaultTheme is the theme shown before any toggle.
const DefaultTheme = ThemeWinter

// ThemeCopy is the display copy associated with a theme.
type ThemeCopy struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Poetic  string `json:"poetic"`
}

var themeCopy = map[Theme]ThemeCopy{
	ThemeWinter: {
		Title:   "冬のきらめき",
		Message: "静かに降る雪のように、ふたりの時間も積み重ねていく。",
		Poetic:  "吐息の白さが、ふたりの距離をより近づける季節。",
	},
	ThemeSummer: {
		Title:   "夏のときめき",
		Message: "まぶしい陽射しの下でも、影まで寄り添うふたり。",
		Poetic:  "波音と笑い声が、記念日の鼓動を刻む季節。",
	},
}

// Themes lists every theme in toggle order.
func Themes() []Theme {
	return []Theme{ThemeWinter, ThemeSummer}
}

// ParseTheme resolves a theme name, case-insensitively.
func ParseTheme(name string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(name))) {
	case ThemeWinter:
		return ThemeWinter, nil
	case ThemeSummer:
		return ThemeSummer, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected %s or %s)", name, ThemeWinter, ThemeSummer)
	}
}

// Toggle returns the other theme. Unknown values fall back to the default
// before flipping.
func (t Theme) Toggle() Theme {
	if t == ThemeSummer {
		return ThemeWinter
	}
	return ThemeSummer
}

// Copy returns the static display copy for the theme.
func (t Theme) Copy() ThemeCopy {
	if c, ok := themeCopy[t]; ok {
		return c
	}
	return themeCopy[DefaultTheme]
}

func (t Theme) String() string {
	return string(t)
}
