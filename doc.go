/*
Package loess is a live content-collection pipeline for site-generation
tooling. It watches a directory of structured content files, maintains a
versioned in-memory view of the user's collection schemas, validates and
transforms each content file into a loadable virtual module, and keeps the
bundler's module graph correctly invalidated as files and schemas change.

# Concept

Content lives in collections: subdirectories of a content root, each holding
markdown files with YAML front-matter. An optional collections.yaml at the
root declares per-collection field schemas. Loess turns every content file
into a synthetic ES module exporting its id, collection, slug, body and
(validated) data, and re-serves fresh modules whenever the file or its
schema changes.

# Key Pieces

  - Config observable: a single-slot pub/sub over the schema configuration
    lifecycle (loading, loaded, error).
  - Event batcher: coalesces watcher bursts into sequential, never
    overlapping processing runs.
  - Generator: owns the observable, reloads schemas, and invalidates every
    cached content module when the schema file changes.
  - Virtual module loader: intercepts content-tagged requests, re-reads the
    file, awaits a settled configuration, validates the entry and emits its
    module source.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/loess"
	)

	func main() {
		pipeline, err := loess.New("./content")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		if err := pipeline.Init(ctx); err != nil {
			log.Fatal(err)
		}

		mod, err := pipeline.Load(ctx, "/abs/content/blog/post-1.md?loess-content")
		if err != nil {
			log.Fatal(err)
		}
		log.Println(mod.Code)
	}

Feed watcher events through Pipeline.QueueEvent to keep the pipeline live;
the cmd/loess dev server wires an fsnotify watcher for exactly that.
*/
package loess
