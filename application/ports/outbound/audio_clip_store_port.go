package outbound

// AudioClipStorePort writes one clip into the run's audio folder and returns
// its full path. Folder lifecycle belongs to the workspace, not the store.
type AudioClipStorePort interface {
	Save(fileName string, content []byte) (string, error)
}
