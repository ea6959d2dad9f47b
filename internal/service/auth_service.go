package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/dto"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/internal/repository"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/jwt"
	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/pkg/redis"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioNoEncontrado   = errors.New("el usuario no existe")
	ErrRefreshInvalido       = errors.New("refresh token inválido")
)

// AuthService autenticación del personal de la consola.
//
// La sesión vive en el servidor: cerrar sesión pone el token en la lista
// negra de Redis, de modo que cualquier pestaña o cliente con ese token
// queda fuera a la vez. Ya no existe el cierre local por pestaña.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService crea una instancia de AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. Buscar al usuario
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("error al consultar usuario", zap.Error(err))
		return nil, err
	}

	// 2. Verificar contraseña (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	// 3. Emitir el par de tokens
	return s.emitTokens(user.UserID, user.Username, user.Email, user.Role, req.RememberMe)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalido
	}

	// Un refresh token en lista negra ya no renueva nada
	if s.rdb != nil {
		bloqueado, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("no se pudo consultar la lista negra", zap.Error(err))
		} else if bloqueado {
			return nil, ErrRefreshInvalido
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("error al consultar usuario", zap.Error(err))
		return nil, err
	}

	return s.emitTokens(user.UserID, user.Username, user.Email, user.Role, claims.RememberMe)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		// Sin Redis la sesión caduca sola al vencer el token
		s.logger.Warn("cierre de sesión sin lista negra disponible",
			zap.String("user_id", claims.UserID))
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("error al poner el token en lista negra", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("error al consultar usuario", zap.Error(err))
		return nil, err
	}

	return &dto.UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *authService) emitTokens(userID, username, email, role string, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID, username, role)
	if err != nil {
		s.logger.Error("error al generar access token", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID, username, role, rememberMe)
	if err != nil {
		s.logger.Error("error al generar refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:       userID,
			Username: username,
			Email:    email,
			Role:     role,
		},
	}, nil
}
