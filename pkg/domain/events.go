package domain

// EventKind classifies a raw filesystem notification.
type EventKind string

const (
	EventAdd       EventKind = "add"
	EventAddDir    EventKind = "addDir"
	EventChange    EventKind = "change"
	EventUnlink    EventKind = "unlink"
	EventUnlinkDir EventKind = "unlinkDir"
)

// Event is a single watcher notification carrying an absolute path.
// Delivery may be duplicated or out of order; processing must be idempotent.
type Event struct {
	Kind EventKind
	Path string
}

// IsDir reports whether the event concerns a directory rather than a file.
func (e Event) IsDir() bool {
	return e.Kind == EventAddDir || e.Kind == EventUnlinkDir
}

// PipelineHooks defines optional callbacks for pipeline observability.
// Nil callbacks are skipped.
type PipelineHooks struct {
	// OnEvent fires for every watcher event the generator processes,
	// config-file and out-of-root events included.
	OnEvent func(Event)

	// OnContentChange fires for every event under the content root that is
	// not the schema configuration file. Informational only: the virtual
	// module loader re-reads files on the next load regardless.
	OnContentChange func(Event)

	// OnConfigReload fires with the settled state after each schema
	// configuration reload.
	OnConfigReload func(ConfigState)

	// OnInvalidate fires once per module URL dropped from the module graph.
	OnInvalidate func(url string)

	// OnModuleEmit fires after a virtual module has been synthesized.
	OnModuleEmit func(url string)

	// OnLoadError fires when a content load fails for a single file.
	OnLoadError func(url string, err error)
}
