package Models

import (
	"errors"
	"html"
	"strings"

	"MediTrack/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`
}

func GetDoctorByID(id uint) (Doctor, error) {
	var doctor Doctor

	if err := DB.First(&doctor, id).Error; err != nil {
		return doctor, errors.New("Doctor not found")
	}

	doctor.PrepareGive()

	return doctor, nil
}

func (doctor *Doctor) PrepareGive() {
	doctor.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (uint, string, error) {

	var err error

	doctor := Doctor{}

	err = DB.Model(Doctor{}).Where("email = ?", email).Take(&doctor).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, doctor.Password)

	if err != nil {
		return 0, "", err
	}

	token, err := Token.GenerateToken(doctor.ID)

	if err != nil {
		return 0, "", err
	}

	return doctor.ID, token, nil
}

func (doctor *Doctor) SaveDoctor() (*Doctor, error) {

	if err := doctor.BeforeSave(); err != nil {
		return &Doctor{}, err
	}

	if err := DB.Create(&doctor).Error; err != nil {
		return &Doctor{}, err
	}

	return doctor, nil
}

func (doctor *Doctor) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doctor.Password = string(hashedPassword)

	doctor.Email = html.EscapeString(strings.TrimSpace(strings.ToLower(doctor.Email)))
	doctor.Name = strings.TrimSpace(doctor.Name)

	return nil
}
