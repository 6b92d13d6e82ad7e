package request

type RegisterRequest struct {
	Identifier string `json:"identifier" binding:"required,max=255"`
	Name       string `json:"name" binding:"max=255"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Role       string `json:"role" binding:"omitempty,oneof=user business"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
