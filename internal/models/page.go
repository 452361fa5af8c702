package models

// PageState is what the client remembers about one page between runs
type PageState struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"` // последний session ID, выданный сервером
	Hash      string `json:"hash"`       // data-hlive-hash отрендеренной страницы
	UpdatedAt int64  `json:"updated_at"` // unix seconds
}
