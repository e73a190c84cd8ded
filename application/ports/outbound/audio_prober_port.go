package outbound

// AudioProberPort measures the playback duration of a synthesized audio file.
type AudioProberPort interface {
	Duration(path string) (float64, error)
}
