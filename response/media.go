package response

type PresignedURLResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
}
