package Controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"MediTrack/BMI"
	"MediTrack/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PatientResponse is what every patient read/write returns: the stored record
// plus bmi/verdict recomputed from the current height and weight. The derived
// fields are response-only and never accepted as input.
type PatientResponse struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	City         string        `json:"city"`
	Age          int           `json:"age"`
	Gender       Models.Gender `json:"gender"`
	Height       float64       `json:"height"`
	Weight       float64       `json:"weight"`
	Diagnosis    *string       `json:"diagnosis"`
	Prescription *string       `json:"prescription"`
	CreatedAt    time.Time     `json:"created_at"`
	Bmi          float64       `json:"bmi"`
	Verdict      BMI.Verdict   `json:"verdict"`
}

type PatientInput struct {
	Name         string        `json:"name"`
	City         string        `json:"city"`
	Age          int           `json:"age"`
	Gender       Models.Gender `json:"gender"`
	Height       float64       `json:"height"`
	Weight       float64       `json:"weight"`
	Diagnosis    *string       `json:"diagnosis"`
	Prescription *string       `json:"prescription"`
}

type PatientUpdateInput struct {
	Name         *string        `json:"name"`
	City         *string        `json:"city"`
	Age          *int           `json:"age"`
	Gender       *Models.Gender `json:"gender"`
	Height       *float64       `json:"height"`
	Weight       *float64       `json:"weight"`
	Diagnosis    *string        `json:"diagnosis"`
	Prescription *string        `json:"prescription"`
}

func toPatientResponse(patient Models.Patient) PatientResponse {
	bmi, verdict, err := BMI.Calculate(patient.Height, patient.Weight)
	if err != nil {
		// Validation keeps this from happening through the API; a stored
		// row that still trips it was corrupted out of band.
		log.Printf("patient %d has unusable height/weight: %v", patient.ID, err)
	}
	return PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		City:         patient.City,
		Age:          patient.Age,
		Gender:       patient.Gender,
		Height:       patient.Height,
		Weight:       patient.Weight,
		Diagnosis:    patient.Diagnosis,
		Prescription: patient.Prescription,
		CreatedAt:    patient.CreatedAt,
		Bmi:          bmi,
		Verdict:      verdict,
	}
}

func patientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return 0, false
	}
	return uint(id), true
}

func writeStorageError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
}

func FetchPatients(c *gin.Context) {
	patients, err := Models.GetPatients()
	if err != nil {
		writeStorageError(c, err)
		return
	}

	responses := make([]PatientResponse, 0, len(patients))
	for _, patient := range patients {
		responses = append(responses, toPatientResponse(patient))
	}
	c.JSON(http.StatusOK, responses)
}

func GetPatient(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	patient, err := Models.GetPatientByID(id)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(patient))
}

func CreatePatient(c *gin.Context) {
	var input PatientInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patient := Models.Patient{
		Name:         input.Name,
		City:         input.City,
		Age:          input.Age,
		Gender:       input.Gender,
		Height:       input.Height,
		Weight:       input.Weight,
		Diagnosis:    input.Diagnosis,
		Prescription: input.Prescription,
	}

	if err := patient.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.CreatePatient(&patient); err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPatientResponse(patient))
}

func UpdatePatient(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	var input PatientUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patient, err := Models.GetPatientByID(id)
	if err != nil {
		writeStorageError(c, err)
		return
	}

	// Only touch the fields the caller actually sent.
	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.City != nil {
		patient.City = *input.City
	}
	if input.Age != nil {
		patient.Age = *input.Age
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.Height != nil {
		patient.Height = *input.Height
	}
	if input.Weight != nil {
		patient.Weight = *input.Weight
	}
	if input.Diagnosis != nil {
		patient.Diagnosis = input.Diagnosis
	}
	if input.Prescription != nil {
		patient.Prescription = input.Prescription
	}

	if err := patient.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := patient.SavePatient(); err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPatientResponse(patient))
}

func DeletePatient(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	if err := Models.DeletePatient(id); err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
