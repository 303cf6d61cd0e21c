package models

import (
	"time"
)

type Photo struct {
	ID       uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	URL      string    `json:"url" gorm:"type:text;not null"`
	Title    string    `json:"title" gorm:"type:text;not null"`
	Category string    `json:"category" gorm:"type:text;index"`
	Location string    `json:"location" gorm:"type:text"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Video struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Thumbnail string    `json:"thumbnail" gorm:"type:text"`
	Platform  string    `json:"platform" gorm:"type:text"`
	Category  string    `json:"category" gorm:"type:text;index"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Writing struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Category    string    `json:"category" gorm:"type:text;index"`
	ExternalURL string    `json:"externalUrl" gorm:"type:text"`
	PublishedAt time.Time `json:"publishedAt" gorm:"type:timestamp with time zone"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Profile struct {
	Username     string    `json:"username" gorm:"primaryKey;type:text"`
	FullName     string    `json:"fullName" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
