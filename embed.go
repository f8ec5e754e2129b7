package showcase

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// app.js drives the accordion, modal, and admin dashboard interactions.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
