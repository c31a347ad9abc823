package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	CreatedAt   *string `json:"created_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type CreateTaskRequest struct {
	Text string `json:"text"`
}

type SearchResponse struct {
	Items       []TaskItem `json:"items"`
	Description string     `json:"description"`
	FilteredBy  string     `json:"filtered_by"`
	Count       int        `json:"count"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
