package boardsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/pkg/session"
)

// AuthService intercambia credenciales por una sesión del gateway. El token
// del backend nunca llega al navegador: queda guardado en el session store y
// el cliente solo ve el ID de sesión opaco.
type AuthService struct {
	hr       *hrclient.Client
	sessions session.Store
	ttl      time.Duration
}

func NewAuthService(hr *hrclient.Client, sessions session.Store, ttl time.Duration) *AuthService {
	return &AuthService{
		hr:       hr,
		sessions: sessions,
		ttl:      ttl,
	}
}

// SignInResult es lo que recibe el navegador tras autenticarse
type SignInResult struct {
	SessionID string            `json:"sessionId"`
	Principal *kernel.Principal `json:"principal"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// SignIn autentica contra el backend, decodifica los claims del token para
// la vista y persiste la sesión
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	token, err := s.hr.SignIn(ctx, hrclient.SignInRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	sess, principal, err := session.SessionFromToken(uuid.NewString(), token, s.ttl, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, err
	}

	logx.WithFields(logx.Fields{"subject": principal.Subject}).Infof("user signed in")
	return &SignInResult{
		SessionID: sess.ID,
		Principal: principal,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// SignUp registra una cuenta nueva en el backend. No abre sesión: el
// usuario debe verificar su email y luego pasar por SignIn.
func (s *AuthService) SignUp(ctx context.Context, req hrclient.SignUpRequest) error {
	if err := s.hr.SignUp(ctx, req); err != nil {
		return err
	}
	logx.WithFields(logx.Fields{"username": req.Username}).Infof("account registered")
	return nil
}

// VerifyEmail confirma el email con el código enviado por el backend
func (s *AuthService) VerifyEmail(ctx context.Context, req hrclient.VerifyEmailRequest) error {
	return s.hr.VerifyEmail(ctx, req)
}

// RequestPasswordReset dispara el correo de recuperación
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.hr.RequestPasswordReset(ctx, email)
}

// ResetPassword completa la recuperación con el token del correo
func (s *AuthService) ResetPassword(ctx context.Context, req hrclient.ResetPasswordRequest) error {
	return s.hr.ResetPassword(ctx, req)
}

// ChangePassword cambia la contraseña del usuario autenticado y cierra la
// sesión actual: el token guardado deja de valer tras el cambio.
func (s *AuthService) ChangePassword(ctx context.Context, sessionID string, req hrclient.ChangePasswordRequest) error {
	if err := s.hr.ChangePassword(ctx, req); err != nil {
		return err
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		logx.WithFields(logx.Fields{"session": sessionID}).Warnf("failed to clear session after password change: %v", err)
	}
	return nil
}

// SignOut borra la sesión; toda pestaña que comparta el ID queda afuera
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// Resolve valida el ID de sesión y devuelve la sesión viva junto con el
// principal decodificado de su token. Lo usa el middleware en cada request,
// y cada request renueva la sesión (TTL deslizante).
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*session.Session, *kernel.Principal, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.sessions.Touch(ctx, sessionID, s.ttl); err != nil {
		logx.WithFields(logx.Fields{"session": sessionID}).Warnf("failed to touch session: %v", err)
	}

	principal, err := session.DecodeClaims(sess.AccessToken)
	if err != nil {
		return nil, nil, err
	}
	return sess, principal, nil
}
