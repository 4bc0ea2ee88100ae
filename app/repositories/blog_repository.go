package repositories

import (
	"time"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/orm"
)

// blogListTTL bounds how stale the cached blog listing may get.
const blogListTTL = 5 * time.Minute

// BlogRepository handles database operations for BlogPost.
type BlogRepository struct{}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

// All returns every blog post, served through the Redis cache.
func (r *BlogRepository) All() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := orm.DB().Model(&models.BlogPost{}).Order("created_at desc").Cache("blogs:all", blogListTTL, &posts)
	return posts, err
}

// FindBySlug looks up a single post by its slug.
func (r *BlogRepository) FindBySlug(slug string) (models.BlogPost, error) {
	var post models.BlogPost
	err := orm.DB().Model(&models.BlogPost{}).Where("slug = ?", slug).First(&post)
	return post, err
}
