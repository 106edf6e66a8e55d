package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/config"
	"github.com/kiranapos/pos-api/pkg/jwt"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// UseCase autenticación del cajero (biller) del punto de venta.
type UseCase struct {
	repo repository.BillerRepository
	cfg  config.JWTConfig
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.BillerRepository, cfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, cfg: cfg, log: log}
}

// Login valida las credenciales y emite el token. Usuario inexistente y
// contraseña incorrecta responden con el mismo error, sin distinguir el caso.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	biller, err := uc.repo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if biller == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(biller.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.cfg.Secret, biller.ID, biller.Username, biller.FullName, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", biller.Username).Msg("Login exitoso")
	return &dto.LoginResponse{
		Token: token,
		Biller: dto.BillerSummary{
			BillerID: biller.ID,
			FullName: biller.FullName,
			Username: biller.Username,
		},
	}, nil
}
