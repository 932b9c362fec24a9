package dto

type LoginDTO struct {
	LoginUserName string `json:"loginUserName" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponseDTO struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	User         UserDTO `json:"user"`
}

type UserProfileDTO struct {
	UserDTO
	Permissions []string `json:"permissions"`
}
