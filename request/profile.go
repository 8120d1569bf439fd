package request

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Gender       *string `json:"gender"`
	Birthdate    *string `json:"birthdate"`
	City         *string `json:"city"`
	MobileNumber *string `json:"mobile_number"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}
