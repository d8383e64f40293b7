package source

import (
	"fmt"

	"github.com/Alp4ka/pagetable"
)

// User is a single row of the user table.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserColumns maps sort aliases accepted from users to column names.
var UserColumns = pagetable.ColumnMapping{
	"id":    "id",
	"name":  "name",
	"email": "email",
	"role":  "role",
}

// UserGetters resolves UserColumns for in-memory sorting.
var UserGetters = pagetable.Getters[User]{
	"id":    func(u User) any { return u.ID },
	"name":  func(u User) any { return u.Name },
	"email": func(u User) any { return u.Email },
	"role":  func(u User) any { return u.Role },
}

var (
	_seedFirstNames = []string{
		"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry",
		"Ivy", "Jack", "Kate", "Leo", "Mia", "Noah", "Olivia", "Paul",
	}
	_seedLastNames = []string{
		"Johnson", "Smith", "Brown", "Prince", "Wilson", "Miller", "Lee",
		"Davis", "Chen", "Garcia",
	}
	_seedRoles = []string{"Admin", "Editor", "Viewer", "Viewer"}
)

// SeedUsers returns n deterministic users with ids 1..n.
func SeedUsers(n int) []User {
	ret := make([]User, 0, max(n, 0))
	for i := 0; i < n; i++ {
		first := _seedFirstNames[i%len(_seedFirstNames)]
		last := _seedLastNames[(i/len(_seedFirstNames))%len(_seedLastNames)]

		ret = append(ret, User{
			ID:       uint(i + 1),
			Name:     first + " " + last,
			Email:    fmt.Sprintf("user%03d@example.com", i+1),
			Password: fmt.Sprintf("pass%04d", (i+1)*37%10000),
			Role:     _seedRoles[i%len(_seedRoles)],
		})
	}

	return ret
}
