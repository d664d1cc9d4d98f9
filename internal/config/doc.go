// Package config loads annotext settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, usually ~/.config/annotext/config.toml
//  3. Command line flags, applied by the caller
//
// A missing file is not an error. Unknown keys are rejected so that a typo
// does not silently fall back to a default.
//
//	[font]
//	char_width = 1
//	line_height = 1
//	measure = "runewidth"
//
//	[regions]
//	palette = ["#3b4261", "#2d4f3c"]
//	detector = "myers"
//
//	[view]
//	max_visible_lines = 30
//	style = "monokai"
//
//	[log]
//	level = "debug"
package config
