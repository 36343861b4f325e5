// Package config loads declarative code input forms from TOML or YAML files.
//
// A file lists fields in display order. Each field maps onto a
// codeinput.Config plus the visual options of its tcell renderer:
//
//	[[fields]]
//	name = "otp"
//	label = "One-time code"
//	kind = "box"
//	length = 6
//	separators = [3]
//	auto_focus = true
//
// Environment variables named CODEFIELD_<NAME>_VALUE and
// CODEFIELD_<NAME>_DISABLED override the initial value and disabled flag of
// the field called name.
package config
