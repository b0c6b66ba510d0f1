package models

import (
	"errors"
	"strings"
)

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("name required")
	}
	return nil
}
