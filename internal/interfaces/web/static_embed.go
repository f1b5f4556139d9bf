// Package web holds the embedded dashboard page. The page is a small static
// app that keeps the session state (token, selected employee) in the browser
// and renders everything from the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns an http.FileSystem for the embedded dashboard.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Can only happen if the embed directive and the tree disagree.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
