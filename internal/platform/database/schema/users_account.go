// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	Password     string
	DisplayName  string
	Bio          string
	ProfileImage string
	Role         string
	CreatedAt    string
	UpdatedAt    string

	// EmailConstraint is the unique constraint on Email.
	EmailConstraint string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:           "users.account",
	ID:              "id",
	Email:           "email",
	Password:        "passwordhash",
	DisplayName:     "displayname",
	Bio:             "bio",
	ProfileImage:    "profileimage",
	Role:            "role",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	EmailConstraint: "uq_account_email",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.DisplayName, t.Bio,
		t.ProfileImage, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
