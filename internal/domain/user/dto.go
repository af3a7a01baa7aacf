package user

type RegisterInput struct {
	Email    string `json:"email" binding:"required" example:"client@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"client@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}
