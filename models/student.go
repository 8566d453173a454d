package models

// Student is one row of the students table. ID is assigned by the database.
type Student struct {
	ID     int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" db:"name" gorm:"not null;size:100"`
	Course Course `json:"course" db:"course" gorm:"not null;size:50"`
	Mobile string `json:"mobile" db:"mobile" gorm:"not null;size:20"`
}

func (Student) TableName() string {
	return "students"
}

// StudentInput carries the editable fields of a student.
// Name and mobile are taken as given, empty strings included.
type StudentInput struct {
	Name   string `json:"name"`
	Course Course `json:"course"`
	Mobile string `json:"mobile"`
}

// Validate only checks the course, the other fields are free text.
func (in StudentInput) Validate() error {
	_, err := ParseCourse(string(in.Course))
	return err
}
