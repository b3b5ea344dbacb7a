package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what /login answers with: either a token, or a request
// for a second factor (optionally with a QR code for first-time enrolment).
type LoginResponse struct {
	Token       string `json:"token,omitempty"`
	RequiresMFA bool   `json:"requiresMFA,omitempty"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest is the body of POST /verify-otp. The backend calls the
// one-time code "token".
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"token"`
}

// EmailRequest is the body of POST /forgot-password.
type EmailRequest struct {
	Email string `json:"email"`
}

// VerifyOTPResetRequest is the body of POST /verify-otp-reset.
type VerifyOTPResetRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest is the body of POST /reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// StatusResponse is the common {success, message} answer. /verify-otp also
// carries the credential token on success.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Result is the normalized outcome of an auth operation as shown to the user.
// Err keeps the underlying cause for errors.Is checks; Message is always
// safe to print.
type Result struct {
	Success     bool
	Message     string
	RequiresMFA bool
	QRCodeURL   string
	Err         error
}
