package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"size:191;uniqueIndex"`
	Password string `json:"-"`
	Rut      string `json:"rut"`
	Address  string `json:"address"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RegisterData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Rut      string `json:"rut"`
	Address  string `json:"address"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the shape returned next to tokens and in admin listings.
type UserInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
