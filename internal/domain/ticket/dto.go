package ticket

import "time"

type CreateTicketInput struct {
	Title       string `json:"title" example:"Cannot log in"`
	Description string `json:"description" example:"The login form rejects my password"`
}

// UpdateTicketInput carries the optional admin mutations. A nil field is left
// untouched; a non-nil empty Tags slice clears every tag.
type UpdateTicketInput struct {
	StatusID *uint   `json:"status_id" example:"2"`
	Tags     *[]uint `json:"tags"`
}

type ReplyInput struct {
	Message string `json:"message" example:"We are looking into it"`
}

// ListParams is the raw list request as received from the caller.
type ListParams struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Sort     string `form:"sort"`
	Page     string `form:"page"`
	PerPage  string `form:"perPage"`
	Scope    string `form:"scope"`
}

// Query is the normalized list request handed to the store.
type Query struct {
	OwnerID  *uint
	StatusID *uint
	Status   string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time // inclusive
	SortBy   string
	SortDesc bool
	Page     int
	PerPage  int
}

type PageMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
	Pages   int   `json:"pages"`
}

type Page struct {
	Data []Ticket `json:"data"`
	Meta PageMeta `json:"meta"`
}
