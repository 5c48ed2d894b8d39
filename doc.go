// Package keysheet describes keyboard-shortcut cheat sheets.
//
// A cheat sheet is a titled list of categories, each holding ordered key
// bindings. Documents are decoded from TOML or YAML templates, validated once
// at the boundary, and then handed to a renderer: the pdf sub-package lays
// them out on a single multi-column page, and RenderText prints a terminal
// preview.
//
// Template example (TOML):
//
//	[main]
//	title = "Sway"
//	column_count = 4
//
//	[[categories]]
//	name = "Windows"
//
//	[[categories.bindings]]
//	keys = ["Super", "H"]
//	desc = "Focus left"
//
//	[[categories.bindings]]
//	keys = "F11"
//	desc = "Fullscreen"
//
// Decoding and previewing:
//
//	doc, err := keysheet.DecodeFile("sway.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = keysheet.RenderText(keysheet.TextRequest{
//		Document: doc,
//		Writer:   os.Stdout,
//		Width:    80,
//	})
//
// A binding's keys may be written as a single string or as a list; both
// decode to the same Keys slice.
package keysheet
