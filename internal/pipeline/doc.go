// Package pipeline renders converted posts into standalone HTML previews.
//
// The stages are:
//   - Markdown to HTML conversion via Goldmark
//   - rewriting site-rooted asset paths to file:// URLs under the site root
//   - wrapping the fragment in the preview page template with inline CSS
//
// The post body already contains raw <img> and <a> tags produced by the
// shorthand rules, so the Goldmark renderer passes raw HTML through.
package pipeline
