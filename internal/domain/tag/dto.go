package tag

type TagInput struct {
	Name  string `json:"name" example:"billing"`
	Color string `json:"color" example:"#2563eb"`
}
