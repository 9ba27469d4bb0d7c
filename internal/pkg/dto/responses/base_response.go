package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	NextURL string `json:"next_url,omitempty"`
	PrevURL string `json:"prev_url,omitempty"`
}

type ErrorResponseDTO struct {
	StatusCode int         `json:"status_code"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	DevMessage string      `json:"dev_message,omitempty"`
	Location   interface{} `json:"location,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}
