/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package render turns resolved asset listings into HTML markup.
package render

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"bennypowers.dev/cartero/manifest"
)

// JoinURL joins an output path onto a base URL.
//
// Root-relative and relative bases are joined like filesystem paths, so
// "/static/" and "a1b2/app.js" give "/static/a1b2/app.js". Bases with a
// scheme or host keep them intact. An empty base returns rel unchanged.
func JoinURL(base, rel string) string {
	if base == "" {
		return rel
	}
	if u, err := url.Parse(base); err == nil && (u.Scheme != "" || u.Host != "") {
		return u.JoinPath(rel).String()
	}
	return path.Join(base, rel)
}

// ScriptTag returns a classic script element loading src.
func ScriptTag(src string) string {
	return renderElement(atom.Script, []html.Attribute{
		{Key: "type", Val: "text/javascript"},
		{Key: "src", Val: src},
	})
}

// StyleTag returns a stylesheet link element for href.
func StyleTag(href string) string {
	return renderElement(atom.Link, []html.Attribute{
		{Key: "rel", Val: "stylesheet"},
		{Key: "href", Val: href},
	})
}

// Tags renders one script tag per listed script and one stylesheet tag per
// listed style, each URL joined onto baseURL. Tags are newline-separated and
// keep the listing's order.
func Tags(listing *manifest.Listing, baseURL string) (scripts, styles string) {
	if listing == nil {
		return "", ""
	}
	return joinTags(listing.Script, baseURL, ScriptTag), joinTags(listing.Style, baseURL, StyleTag)
}

func joinTags(paths []string, baseURL string, tag func(string) string) string {
	tags := make([]string, 0, len(paths))
	for _, p := range paths {
		tags = append(tags, tag(JoinURL(baseURL, p)))
	}
	return strings.Join(tags, "\n")
}

func renderElement(a atom.Atom, attrs []html.Attribute) string {
	var b strings.Builder
	// Render only fails for void elements with children.
	_ = html.Render(&b, &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	})
	return b.String()
}
