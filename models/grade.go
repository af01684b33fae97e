package models

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
)

// GradeFromScore maps a 0-100 total score to its letter grade.
func GradeFromScore(total float64) Grade {
	switch {
	case total >= 85:
		return GradeAPlus
	case total >= 75:
		return GradeA
	case total >= 65:
		return GradeBPlus
	case total >= 55:
		return GradeB
	case total >= 45:
		return GradeCPlus
	case total >= 35:
		return GradeC
	default:
		return GradeD
	}
}
