package models

// Роль оператора
const RoleOperator = "operator"

// Operator is the single account allowed to use the HTTP API.
type Operator struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Запросы для аутентификации
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Operator Operator `json:"operator"`
}
