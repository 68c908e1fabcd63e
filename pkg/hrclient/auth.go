package hrclient

import (
	"context"
	"encoding/json"
)

// SignInRequest credenciales del formulario de login
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpRequest datos de registro de una cuenta nueva
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// VerifyEmailRequest confirma el email con el código enviado
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest completa un reset con el token del correo
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ChangePasswordRequest cambia la contraseña de la sesión actual
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SignIn autentica contra el backend y devuelve el access token crudo.
// El backend responde {"accessToken": "..."} o el token pelado.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (string, error) {
	var data json.RawMessage
	if err := c.post(ctx, "/auth/sign-in", req, &data); err != nil {
		return "", err
	}

	var wrapped struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.AccessToken != "" {
		return wrapped.AccessToken, nil
	}

	var bare string
	if err := json.Unmarshal(data, &bare); err == nil && bare != "" {
		return bare, nil
	}
	return "", ErrMalformedResponse().WithDetail("reason", "sign-in response has no access token")
}

// SignUp registra una cuenta nueva. El backend envía el código de
// verificación por correo; la cuenta queda pendiente hasta VerifyEmail.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	return c.post(ctx, "/auth/sign-up", req, nil)
}

// VerifyEmail confirma el email con el código recibido
func (c *Client) VerifyEmail(ctx context.Context, req VerifyEmailRequest) error {
	return c.post(ctx, "/auth/verify-email", req, nil)
}

// RequestPasswordReset dispara el correo de recuperación. El backend
// responde 200 exista o no la cuenta.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/auth/forgot-password", body, nil)
}

// ResetPassword completa la recuperación con el token del correo
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.post(ctx, "/auth/reset-password", req, nil)
}

// ChangePassword cambia la contraseña del usuario autenticado
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.put(ctx, "/auth/password", req, nil)
}
