// Package urlmd converts web resources (forum threads and comments,
// social-media status pages, arbitrary HTML documents) into a normalized
// record made of a title and a Markdown body.
//
// This package contains domain types, interfaces and the pure algorithms
// shared by every source: URL classification, text normalization, comment
// tree search and the Markdown templates. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, oauth2/).
package urlmd
