package seeders

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/auth"
)

func init() {
	Register("products", SeedProducts)
	Register("blogs", SeedBlogs)
	Register("demo-user", SeedDemoUser)
}

// SeedProducts inserts the initial shop inventory. Existing rows are left
// untouched so the seeder is safe to re-run.
func SeedProducts(db *gorm.DB) error {
	products := []models.ShopProduct{
		{ID: "p1", Name: "ietark Sticker Pack", Description: "Die-cut stickers of the site's tool icons.", Price: 100, Stock: 500, Image: "products/stickers.png"},
		{ID: "p2", Name: "Coffee Mug", Description: "Ceramic mug with the ietark logo.", Price: 249.50, Stock: 120, Image: "products/mug.png"},
		{ID: "p3", Name: "Developer T-Shirt", Description: "Cotton tee, prints the two-sum solution on the back.", Price: 599, Stock: 80, Image: "products/tshirt.png"},
		{ID: "p4", Name: "Desk Mat", Description: "Large stitched-edge desk mat.", Price: 899, Stock: 40, Image: "products/deskmat.png"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

// SeedBlogs inserts a couple of starter posts.
func SeedBlogs(db *gorm.DB) error {
	posts := []models.BlogPost{
		{
			Title:   "Integrating Razorpay the hard way",
			Slug:    "integrating-razorpay",
			Excerpt: "What the order/verify dance actually looks like on the wire.",
			Content: "Creating a gateway order, signing the callback, and why the amount travels in paise.",
			Tags:    "payments,razorpay",
		},
		{
			Title:   "Why every tool on this site is a static catalogue entry",
			Slug:    "static-tool-catalogue",
			Excerpt: "The tools list never changes at runtime, so it never touches the database.",
			Content: "The catalogue is compiled in. This post walks through the trade-off.",
			Tags:    "architecture",
		},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&posts).Error
}

// SeedDemoUser creates a demo account with a pre-filled cart, handy for
// exercising the checkout flow locally.
func SeedDemoUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "demo@ietark.dev").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Demo User",
		Email:    "demo@ietark.dev",
		Password: hash,
		Role:     "user",
		CartData: []models.CartItem{{ProductID: "p1", Quantity: 2}},
	}
	return db.Create(&user).Error
}
