// Package ports defines the interfaces the pipeline core depends on.
// The bundler's module graph and the schema configuration source are
// collaborators behind these ports, keeping the core decoupled from any
// particular bundler or config format.
package ports
