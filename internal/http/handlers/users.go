package handlers

import (
	"net/http"

	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{}
	users, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id (admin)
func GetUserByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.UserRepository{}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type userRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

// POST /api/users (admin)
func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "password too short", nil)
		return
	}
	role := req.Role
	if role == "" {
		role = "user"
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	repo := repositories.UserRepository{}
	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
		Status:   status,
	}
	id, err := repo.Create(user, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}
	user.ID = id
	c.JSON(http.StatusCreated, user)
}

// PUT /api/users/:id (admin)
func UpdateUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.UserRepository{}
	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   req.Status,
	}
	if err := repo.Update(id, user); err != nil {
		RespondDomainError(c, err)
		return
	}
	user.ID = id
	c.JSON(http.StatusOK, user)
}

// DELETE /api/users/:id (admin)
func DeleteUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.UserRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
