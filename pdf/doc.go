// Package pdf renders keysheet documents to a single-page PDF.
//
// The page is split into Document.ColumnCount columns. Categories are
// placed one at a time into the column with the most room left, so column
// heights stay roughly balanced; a category is never split. Each binding is
// drawn as a row of key badges, a separator and a word-wrapped description.
//
// Example:
//
//	doc, err := keysheet.DecodeFile("sway.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = pdf.SaveFile("sway.pdf", pdf.RenderRequest{
//		Document: doc,
//		Theme:    keysheet.DefaultTheme(),
//		Config:   pdf.DefaultConfig(),
//		Footer:   "pkt.systems/keysheet",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Without font files the core Helvetica and Courier fonts are used. Set
// RegularFont/BoldFont/BlackFont/MonoFont in Config (TTF paths) or the
// matching *FontBytes fields for full Unicode coverage.
//
// Layout does not paginate. Content that runs past the bottom of the page
// is drawn anyway and logged as a warning.
package pdf
