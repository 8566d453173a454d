package models

import (
	"errors"
	"testing"
)

func TestParseCourse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Course
		wantErr bool
	}{
		{"Biology", "Biology", CourseBiology, false},
		{"Physics", "Physics", CoursePhysics, false},
		{"lowercase rejected", "biology", "", true},
		{"empty rejected", "", "", true},
		{"unknown rejected", "Chemistry", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCourse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCourse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCourse) {
				t.Errorf("ParseCourse(%q) error = %v, want ErrInvalidCourse", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCourse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCourseNamesOrder(t *testing.T) {
	want := []string{"Biology", "Astronomy", "Math", "Physics"}
	got := CourseNames()
	if len(got) != len(want) {
		t.Fatalf("CourseNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CourseNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStudentInputValidate(t *testing.T) {
	if err := (StudentInput{Course: CourseMath}).Validate(); err != nil {
		t.Errorf("empty name and mobile should be accepted, got %v", err)
	}
	if err := (StudentInput{Name: "x", Course: "math"}).Validate(); err == nil {
		t.Error("expected error for lowercase course")
	}
}
