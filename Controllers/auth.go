package Controllers

import (
	"errors"
	"net/http"
	"time"

	"MediTrack/Models"
	"MediTrack/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor := Models.Doctor{}
	doctor.Name = input.Name
	doctor.Email = input.Email
	doctor.Password = input.Password

	// The unique index on email is the authority on duplicates, so a
	// concurrent registration race still resolves here.
	if _, err := doctor.SaveDoctor(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}

	doctor.PrepareGive()
	c.JSON(http.StatusCreated, gin.H{"message": "Registered Successfully", "data": gin.H{
		"id":         doctor.ID,
		"name":       doctor.Name,
		"email":      doctor.Email,
		"created_at": doctor.CreatedAt,
	}})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := Models.LoginCheck(input.Email, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email or password is incorrect."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token})
}

func CurrentDoctor(c *gin.Context) {
	doctor_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := Models.GetDoctorByID(doctor_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var output struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}
	output.ID = doctor.ID
	output.Name = doctor.Name
	output.Email = doctor.Email
	output.CreatedAt = doctor.CreatedAt

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": output})
}
