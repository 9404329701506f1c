package game

const (
	ErrorManagerClosed     = "manager is closed"
	ErrorPoolClosed        = "worker pool is closed"
	ErrorDuplicatePlayer   = "player %s is already registered"
	ErrorUnknownArchetype  = "unknown archetype %q"
	ErrorUnsupportedFormat = "unsupported settings format %q"
)
