package models

import "gorm.io/gorm"

type Blog struct {
	gorm.Model
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type Contact struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Read    bool   `json:"read"`
}
