package domain

import (
	"errors"
	"strings"
)

// Role is the coarse capability tag attached to a session user.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleGuest   Role = "guest"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a raw string into a Role. Unknown values are rejected.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleStudent, RoleAdmin, RoleFaculty, RoleGuest:
		return r, nil
	}
	return "", ErrInvalidRole
}

// Course is the programme family a user is enrolled in.
type Course string

const (
	CourseEngineering Course = "engineering"
	CourseOther       Course = "other"
)

// Branch is an engineering department.
type Branch string

const (
	BranchComputerScience Branch = "computer_science"
	BranchElectronics     Branch = "electronics"
	BranchMechanical      Branch = "mechanical"
	BranchCivil           Branch = "civil"
	BranchElectrical      Branch = "electrical"
)

// Branches lists the selectable branches with their display labels, in form order.
var Branches = []struct {
	Value Branch `json:"value"`
	Label string `json:"label"`
}{
	{BranchComputerScience, "Computer Science & Engineering"},
	{BranchElectronics, "Electronics & Communication"},
	{BranchMechanical, "Mechanical Engineering"},
	{BranchCivil, "Civil Engineering"},
	{BranchElectrical, "Electrical Engineering"},
}

// User is the session identity. Its JSON form is the durable session record.
type User struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Role            Role    `json:"role"`
	Course          Course  `json:"course"`
	Branch          *Branch `json:"branch,omitempty"`
	Semester        *int    `json:"semester,omitempty"`
	YearOfAdmission *int    `json:"yearOfAdmission,omitempty"`
	ProfileComplete bool    `json:"profileComplete"`
}

// Clone returns a deep copy so callers never share optional field pointers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Branch != nil {
		b := *u.Branch
		c.Branch = &b
	}
	if u.Semester != nil {
		s := *u.Semester
		c.Semester = &s
	}
	if u.YearOfAdmission != nil {
		y := *u.YearOfAdmission
		c.YearOfAdmission = &y
	}
	return &c
}

// HasAcademicProfile reports whether both branch and semester are set.
func (u *User) HasAcademicProfile() bool {
	return u != nil && u.Branch != nil && *u.Branch != "" && u.Semester != nil && *u.Semester != 0
}

// LocalPart returns the part of an email address before '@'.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
