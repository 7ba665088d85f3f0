package Models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}

type Patient struct {
	gorm.Model
	Name         string  `gorm:"size:255;not null" json:"name"`
	City         string  `gorm:"size:255;not null" json:"city"`
	Age          int     `gorm:"not null" json:"age"`
	Gender       Gender  `gorm:"type:varchar(10);not null" json:"gender"`
	Height       float64 `gorm:"not null" json:"height"`
	Weight       float64 `gorm:"not null" json:"weight"`
	Diagnosis    *string `gorm:"type:text" json:"diagnosis"`
	Prescription *string `gorm:"type:text" json:"prescription"`
}

// Validate checks the field constraints and reports every violation at once,
// so the caller sees the full list of offending fields in a single round trip.
func (patient *Patient) Validate() error {
	var problems []string

	if strings.TrimSpace(patient.Name) == "" {
		problems = append(problems, "name: must not be empty")
	}
	if strings.TrimSpace(patient.City) == "" {
		problems = append(problems, "city: must not be empty")
	}
	if patient.Age <= 0 || patient.Age >= 120 {
		problems = append(problems, "age: must be between 1 and 119")
	}
	if !patient.Gender.Valid() {
		problems = append(problems, "gender: must be one of male, female or others")
	}
	if !(patient.Height > 0) || math.IsInf(patient.Height, 0) {
		problems = append(problems, "height: must be a positive number of meters")
	}
	if !(patient.Weight > 0) || math.IsInf(patient.Weight, 0) {
		problems = append(problems, "weight: must be a positive number of kilograms")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid patient: %s", strings.Join(problems, "; "))
	}
	return nil
}

func CreatePatient(patient *Patient) error {
	return DB.Create(patient).Error
}

func GetPatientByID(id uint) (Patient, error) {
	var patient Patient
	if err := DB.First(&patient, id).Error; err != nil {
		return patient, err
	}
	return patient, nil
}

func GetPatients() ([]Patient, error) {
	var patients []Patient
	if err := DB.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (patient *Patient) SavePatient() error {
	return DB.Save(patient).Error
}

func DeletePatient(id uint) error {
	result := DB.Delete(&Patient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeDeletedPatients permanently removes patients soft-deleted before the
// cutoff. Returns the number of rows cleared.
func PurgeDeletedPatients(cutoff time.Time) (int64, error) {
	result := DB.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&Patient{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
