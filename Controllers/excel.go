package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"MediTrack/BMI"
	"MediTrack/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportPatientsExcel(c *gin.Context) {
	patients, err := Models.GetPatients()
	if err != nil {
		writeStorageError(c, err)
		return
	}

	headers := map[string]string{
		"A1": "Name",
		"B1": "City",
		"C1": "Age",
		"D1": "Gender",
		"E1": "Height",
		"F1": "Weight",
		"G1": "BMI",
		"H1": "Verdict",
		"I1": "Diagnosis",
		"J1": "Prescription",
	}
	file := excelize.NewFile()
	sheet := "Patients"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(patients); i++ {
		appendRowPatient(sheet, file, i, patients)
	}
	var filename string = "./Patients.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export file"})
		return
	}
	c.File(filename)
}

func appendRowPatient(sheet string, file *excelize.File, index int, rows []Models.Patient) *excelize.File {
	rowCount := index + 2
	bmi, verdict, err := BMI.Calculate(rows[index].Height, rows[index].Weight)
	if err != nil {
		log.Printf("patient %d has unusable height/weight: %v", rows[index].ID, err)
	}
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Name)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].City)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Age)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), string(rows[index].Gender))
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Height)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Weight)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), bmi)
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), string(verdict))
	file.SetCellValue(sheet, fmt.Sprintf("I%v", rowCount), textOrEmpty(rows[index].Diagnosis))
	file.SetCellValue(sheet, fmt.Sprintf("J%v", rowCount), textOrEmpty(rows[index].Prescription))
	return file
}

func textOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
