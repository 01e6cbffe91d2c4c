package ui

// Package ui contains the Fyne-based desktop form for the movies table.
// It lays out the inputs, buttons and table, dispatches user actions to one
// handler per event and forwards add/delete/shutdown intents to the table
// model. All UI strings are localized via Localization.
