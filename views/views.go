// Package views holds the templ templates for every page: the public
// layout, home, blog/projects listings, the article modal fragment, and
// the admin panel. The *_templ.go files are generated from the .templ
// sources; run go generate (or templ generate) after editing a template.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate
