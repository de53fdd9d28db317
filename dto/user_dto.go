package dto

type CreateUserInput struct {
	Username string  `form:"username" json:"username" binding:"required"`
	Password string  `form:"password" json:"password" binding:"required,min=6"`
	Email    *string `form:"email" json:"email"`
	Company  *string `form:"company" json:"company"`
	Role     *string `form:"role" json:"role" binding:"omitempty,oneof=shipper carrier"`
}

type UpdateUserInput struct {
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
