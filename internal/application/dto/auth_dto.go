package dto

// LoginRequest petición de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// BillerSummary resumen del cajero autenticado.
type BillerSummary struct {
	BillerID string `json:"biller_id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

// LoginResponse token firmado más el resumen del cajero.
type LoginResponse struct {
	Token  string        `json:"token"`
	Biller BillerSummary `json:"biller"`
}
