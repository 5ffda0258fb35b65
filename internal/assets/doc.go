// Package assets provides the CSS styles and HTML template used to render
// post previews. Assets are embedded at compile time.
//
//	styles/{name}.css        preview styles (default, dark)
//	templates/{name}.html    page templates (preview)
//
// Asset names are validated so they cannot escape their directory.
package assets
