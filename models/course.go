package models

import (
	"errors"
	"fmt"
)

type Course string

const (
	CourseBiology   Course = "Biology"
	CourseAstronomy Course = "Astronomy"
	CourseMath      Course = "Math"
	CoursePhysics   Course = "Physics"
)

// Courses lists the courses in the order they are offered to the operator.
var Courses = []Course{CourseBiology, CourseAstronomy, CourseMath, CoursePhysics}

var ErrInvalidCourse = errors.New("invalid course")

// ParseCourse accepts an exact course name. Case is significant.
func ParseCourse(name string) (Course, error) {
	for _, c := range Courses {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrInvalidCourse, name, CourseNames())
}

func CourseNames() []string {
	names := make([]string, len(Courses))
	for i, c := range Courses {
		names[i] = string(c)
	}
	return names
}

func (c Course) String() string {
	return string(c)
}
