package documents

// UploadRequest carries a document whose text was already extracted
// upstream (PDF/DOCX handling is not this service's concern)
type UploadRequest struct {
	OwnerID  string `json:"owner_id" binding:"required"`
	Filename string `json:"filename" binding:"required"`
	Kind     string `json:"kind" binding:"required,oneof=resume job"`
	Text     string `json:"text"`
}

type UploadResponse struct {
	ID       string `json:"id"`
	Embedded bool   `json:"embedded"`
}

type ReindexRequest struct {
	OwnerID string `json:"owner_id"`
}
