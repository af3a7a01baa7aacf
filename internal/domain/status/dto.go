package status

type StatusInput struct {
	Name string `json:"name" example:"In Progress"`
}
