package models

import "gorm.io/gorm"

// BlogPost is a published blog entry, addressed by slug.
type BlogPost struct {
	gorm.Model
	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Excerpt string `gorm:"size:512" json:"excerpt"`
	Content string `gorm:"type:text" json:"content"`
	Image   string `gorm:"size:255" json:"image"`
	Tags    string `gorm:"size:255" json:"tags"`
}
