package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"monitorias_backend/internals/configs"
	authDTO "monitorias_backend/internals/features/users/auth/dto"
	userDTO "monitorias_backend/internals/features/users/user/dto"
	userModel "monitorias_backend/internals/features/users/user/model"
	helper "monitorias_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

var validateAuth = validator.New()

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "correo y password requeridos")
	}

	var user userModel.UsuarioModel
	if err := h.DB.Where("usuario_correo = ?", req.Correo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "credenciales inválidas")
	}

	token, err := h.emitirToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el token")
	}

	return helper.JsonOK(c, "login exitoso", authDTO.LoginResponse{
		AccessToken: token,
		Rol:         user.UsuarioRol,
		User:        userDTO.FromModel(&user),
	})
}

// GET /api/auth/profile
func (h *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UsuarioModel
	if err := h.DB.First(&user, "usuario_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", userDTO.FromModel(&user))
}

// PUT /api/auth/profile
func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UsuarioModel
	if err := h.DB.First(&user, "usuario_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	if user.IsStudent() && req.Semestre != nil {
		if !semestreValido(*req.Semestre) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Semestre inválido. Debe ser entre 1 y 10")
		}
		user.UsuarioSemestre = req.Semestre
	}
	if req.Nombre != nil && *req.Nombre != "" {
		user.UsuarioNombre = *req.Nombre
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "perfil actualizado", userDTO.FromModel(&user))
}

func (h *AuthController) emitirToken(user *userModel.UsuarioModel) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.UsuarioID), 10),
		"rol": user.UsuarioRol,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(configs.JWTExpiracion).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func semestreValido(s string) bool {
	for n := 1; n <= 10; n++ {
		if s == strconv.Itoa(n) {
			return true
		}
	}
	return false
}
