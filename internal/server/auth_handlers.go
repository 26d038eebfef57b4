package server

import (
	"strconv"
	"time"

	"volunteerhub/internal/models"
	"volunteerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	FullName     string   `json:"full_name"`
	Address1     string   `json:"address1"`
	Address2     string   `json:"address2"`
	City         string   `json:"city"`
	StateCode    string   `json:"state_code"`
	Zip          string   `json:"zip"`
	Skills       []string `json:"skills"`
	Preferences  string   `json:"preferences"`
	Availability []string `json:"availability"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new volunteer account.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateDateList(req.Availability); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Password:     string(hash),
		Role:         models.UserRoleVolunteer,
		FullName:     req.FullName,
		Address1:     req.Address1,
		Address2:     req.Address2,
		City:         req.City,
		StateCode:    req.StateCode,
		Zip:          req.Zip,
		Skills:       req.Skills,
		Preferences:  req.Preferences,
		Availability: req.Availability,
	}

	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userId": user.ID})
}

// Login verifies credentials and issues a signed token. Wrong credentials
// return 400, not 401, so clients can treat them as form errors.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return fail(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return fail(c, models.NewValidationError("Invalid username or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fail(c, models.NewValidationError("Invalid username or password"))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"id": user.ID, "token": token})
}

func (s *Server) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     string(user.Role),
		"iss":      "volunteerhub",
		"aud":      "volunteerhub-api",
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(24 * time.Hour).Unix(),
		"jti":      uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Config.JWTSecret))
}
