package dto

type CreateVideoRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	ImageDir    string   `json:"image_dir"`
	ImagePaths  []string `json:"image_paths"`
}

type CreateVideoResponse struct {
	RunID         string  `json:"run_id"`
	VideoKey      string  `json:"video_key"`
	VideoRegion   string  `json:"video_region"`
	SceneCount    int     `json:"scene_count"`
	TotalDuration float64 `json:"total_duration_seconds"`
}
