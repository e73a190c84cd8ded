package outbound

// WorkspacePort prepares the output folder tree for a run: per-run folders
// (audio clips, rendered videos) are cleared, shared folders are created if
// missing. Called exactly once, at run start.
type WorkspacePort interface {
	Initialize() error
}
