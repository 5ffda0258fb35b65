package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteSitePaths converts site paths in img[src] and a[href] to file://
// URLs under siteRoot, so a preview opened from disk finds the assets.
// Both site-rooted ("/assets/a.png") and relative ("img/a.png") paths are
// resolved against siteRoot. If siteRoot is empty, returns the HTML unchanged.
//
// Not rewritten:
//   - URLs with a scheme, protocol-relative URLs and anchors
//   - paths that resolve outside siteRoot
func RewriteSitePaths(htmlContent, siteRoot string) (string, error) {
	if siteRoot == "" {
		return htmlContent, nil
	}

	absRoot, err := filepath.Abs(siteRoot)
	if err != nil {
		return "", err
	}

	container, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(container, absRoot)

	var buf strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// ResolveSitePath returns the file:// URL for a single site path, or the
// path unchanged when it is not a local path under siteRoot.
func ResolveSitePath(path, siteRoot string) string {
	if siteRoot == "" || !isSitePath(path) {
		return path
	}
	absRoot, err := filepath.Abs(siteRoot)
	if err != nil {
		return path
	}
	if resolved, ok := resolveUnder(path, absRoot); ok {
		return resolved
	}
	return path
}

// parseFragment parses HTML with a body context and wraps the resulting
// nodes in a document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

func rewriteNode(n *html.Node, absRoot string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", absRoot)
		case atom.A:
			rewriteAttr(n, "href", absRoot)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, absRoot)
	}
}

func rewriteAttr(n *html.Node, attrName, absRoot string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isSitePath(attr.Val) {
			continue
		}
		if resolved, ok := resolveUnder(attr.Val, absRoot); ok {
			n.Attr[i].Val = resolved
		}
	}
}

// resolveUnder joins a site path to absRoot. Returns false when the result
// escapes absRoot.
func resolveUnder(path, absRoot string) (string, bool) {
	local := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	absPath := filepath.Join(absRoot, local)
	if !isPathUnderDir(absPath, absRoot) {
		return "", false
	}
	return pathToFileURL(absPath), true
}

// isSitePath reports whether path refers to a file of the site.
func isSitePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return false
	}
	return true
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
