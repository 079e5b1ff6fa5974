package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	intconfig "flextrack/internal/config"
	"flextrack/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req credentialsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := intconfig.DB.QueryRow(`
		SELECT id, email, password_hash, COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "credenciais inválidas", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "falha ao consultar usuário", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "credenciais inválidas", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(intconfig.JWTSecretBytes())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao gerar token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": user})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req credentialsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "informe email e senha", nil)
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&exists); err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao verificar usuário", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusBadRequest, "email já registrado", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao processar a senha", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, NOW())
	`, email, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao salvar usuário", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message": "conta criada",
		"user":    gin.H{"id": id, "email": email},
	})
}
