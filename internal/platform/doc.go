package platform

// Package platform contains OS integration and external tooling glue: the
// yt-dlp extraction client, playlist listing, filesystem helpers and OS
// folder reveal.
