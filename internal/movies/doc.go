package movies

// Package movies implements the tabular data model behind the movie table.
// DataModel mirrors the contents of a store.Store in a Fyne data binding so
// the table view redraws whenever rows are inserted, deleted or reloaded.
