package content

import (
	folio "github.com/niya-shroff/folio"
)

var Education = []folio.EducationEntry{
	{
		Degree:      "B.S. in Computer Science & B.A. in Economics (Dual Degree)",
		School:      "University of Massachusetts Amherst",
		Location:    "Amherst, MA",
		Period:      "December 2024",
		Honors:      "Magna Cum Laude",
		Description: "Completed two Bachelor's degrees simultaneously, combining technical computer science expertise with economic analysis and theory.",
		Courses: []string{
			"Artificial Intelligence",
			"Software Engineering",
			"Algorithms & Data Structures",
			"Game Theory",
			"Econometrics",
			"Programming Methods",
			"Project Management",
		},
	},
	{
		Degree:      "High School Diploma",
		School:      "Chelmsford High School",
		Location:    "Chelmsford, MA",
		Period:      "June 2021",
		Description: "Graduated with high honors after completing numerous Honors and AP courses.",
	},
}
