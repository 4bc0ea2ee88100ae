package migrations

import (
	"gorm.io/gorm"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/migration"
)

func init() {
	migration.Register("20250815000000_create_users_table", &CreateUsersTable{})
	migration.Register("20250815000001_create_shop_products_table", &CreateShopProductsTable{})
	migration.Register("20250815000002_create_orders_table", &CreateOrdersTable{})
	migration.Register("20250815000003_create_blog_posts_table", &CreateBlogPostsTable{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateShopProductsTable struct{}

func (m *CreateShopProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ShopProduct{})
}

func (m *CreateShopProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("shop_products")
}

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

type CreateBlogPostsTable struct{}

func (m *CreateBlogPostsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlogPost{})
}

func (m *CreateBlogPostsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("blog_posts")
}
