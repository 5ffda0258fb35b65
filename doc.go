// Package draftpost converts shorthand drafts into front-matter markdown posts.
//
// # Quick Start
//
//	conv := draftpost.NewConverter()
//	post, err := conv.Convert("title: Hello World\ntag: go, blog\nSome //emphasis//.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(filepath.Join("_posts", post.Filename()), []byte(post.Markdown()), 0o644)
//
// # Draft Format
//
// A draft is line oriented. The first lines carry metadata, the rest is body:
//
//	title: <text>
//	author: <text>          (only with Schema{Author: true})
//	tag: <comma, separated>
//	cover_image: <path>     (optional)
//	content: <body...>      (the label is optional)
//
// # Shorthand
//
// The body is rewritten by an ordered list of substitution rules:
//
//  1. (description)![path]  image with alt text
//  2. ![path]               image
//  3. (text)[url]           link
//  4. //text//              italics
//  5. ##text##              bold
//  6. ../text\..            blockquote (first occurrence unless BlockquoteAll)
//
// Image paths under the asset prefix ("assets/" by default) are made
// root-relative. Substitution is literal: malformed or overlapping shorthand
// yields whatever the rules produce, and there is no error path.
//
// # Output
//
// RenderedPost.Markdown returns YAML front matter (layout, title, optional
// author, date, optional tags, optional cover_image) followed by the body.
// RenderedPost.Filename returns "{date}-{slug}.md", or
// "{author}-{date}-{slug}.md" when the post has an author.
//
// # Preview
//
// Previewer renders a RenderedPost as a standalone HTML page with embedded
// styles, resolving site paths under a site root given with WithSiteRoot.
//
// Reading the draft, writing the post and deleting the draft are left to the
// caller; see cmd/draftpost.
package draftpost
