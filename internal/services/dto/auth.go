package dto

// RegisterRequest - запрос регистрации.
// Имена полей сохранены как в SPA (userType - camelCase).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"required,is-user-type"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUser - публичная часть пользователя в ответе логина
type LoginUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// LoginResponse - ответ логина. Token проверяется сервером на каждом
// защищенном маршруте; сам по себе user_type из ответа ничего не дает.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}
