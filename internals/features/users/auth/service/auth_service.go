package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gedungku_backend/internals/configs"
	authHelper "gedungku_backend/internals/features/users/auth/helper"
	authModel "gedungku_backend/internals/features/users/auth/model"
	userModel "gedungku_backend/internals/features/users/user/model"
	helper "gedungku_backend/internals/helpers"
)

const accessTTLDefault = 30 * time.Minute

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.Name, input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(passwordHash),
	}
	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", input.Email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun belum terdaftar.")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password tidak sesuai.")
	}

	return issueToken(c, user)
}

/* ==========================
   LOGIN GOOGLE (id_token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	clientID := configs.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca klaim token Google")
	}

	email := strings.ToLower(claimSet.Email)
	var user userModel.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		// user baru: buat akun dengan password acak (login hanya via Google)
		randomPass, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		name := claimSet.Name
		if name == "" {
			name = email
		}
		user = userModel.UserModel{
			Name:     name,
			Email:    email,
			Password: string(randomPass),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] login google create user: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueToken(c, user)
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"typ": "access",
		"sub": user.ID.String(),
		"id":  user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "User Login Successfully", fiber.Map{
		"token": signed,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

/* ==========================
   LOGOUT (blacklist token)
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No token provided")
	}

	// Ambil exp dari token supaya entri blacklist bisa kedaluwarsa sendiri
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token")
	}
	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Unix(int64(expFloat), 0).UTC(),
	}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		// token sudah pernah di-blacklist: logout tetap dianggap sukses
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			log.Printf("[ERROR] logout: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	return helper.JsonOK(c, "Logout successful", nil)
}
