package dto

// SubmitContentRequest carries raw text into the pipeline. When SessionId
// is empty a new session is created.
type SubmitContentRequest struct {
	Text       string `json:"text" validate:"required"`
	Speaker    string `json:"speaker"`
	SourceRef  string `json:"source_ref"`
	Subject    string `json:"subject"`
	SourceType string `json:"source_type"`
	SessionId  string `json:"session_id"`
}

type SubmitContentResponse struct {
	SessionId  string `json:"session_id"`
	ChunkCount int    `json:"chunk_count"`
}

// RawChunkMessage is one pre-chunked unit submitted via the data endpoint
// and the shape carried on the classification topic. Empty text is accepted
// here; unusable chunks are skipped downstream rather than failing the
// batch.
type RawChunkMessage struct {
	SourceRef   string `json:"source_ref"`
	Speaker     string `json:"speaker"`
	RawText     string `json:"raw_text"`
	CleanedText string `json:"cleaned_text"`
	Subject     string `json:"subject"`
}

type SubmitDataRequest struct {
	SourceType string            `json:"source_type"`
	Chunks     []RawChunkMessage `json:"chunks" validate:"required,min=1,dive"`
}

type SubmitDataResponse struct {
	SessionId  string `json:"session_id"`
	ChunkCount int    `json:"chunk_count"`
}

// ClassifyBatchMessage is the payload published to the classification topic.
type ClassifyBatchMessage struct {
	SessionId  string            `json:"session_id"`
	SourceType string            `json:"source_type"`
	Chunks     []RawChunkMessage `json:"chunks"`
}
