package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ClinicaAdmin/models"
	"ClinicaAdmin/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// userView is the console-facing account shape: the backend record plus the
// resolved role display name.
type userView struct {
	models.User
	RoleLabel string `json:"roleLabel"`
}

func newUserView(user models.User) userView {
	return userView{User: user, RoleLabel: models.RoleLabel(user.RoleID)}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &user)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, newUserView(*user))
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users := h.service.GetAll(c.Request.Context())
	views := make([]userView, len(users))
	for i, user := range users {
		views[i] = newUserView(user)
	}
	c.JSON(200, views)
}

// UpdateUser accepts a partial payload; only the provided fields are sent on
// to the backend.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	var fields models.UserUpdate
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, fields); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "User updated"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "User deleted"})
}

func parseUserID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
