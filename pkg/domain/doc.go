// Package domain contains the core types of the content pipeline:
// watcher events, content paths, entry identity, and the schema
// configuration state union shared between the generator and the
// virtual module loader.
package domain
