package repositories

import (
	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/orm"
)

// ProductRepository handles database operations for ShopProduct.
//
// FindByID deliberately bypasses the cache: checkout prices carts against
// then-current product prices, so stale reads are not acceptable there.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID looks up a product by its natural string id.
func (r *ProductRepository) FindByID(id string) (models.ShopProduct, error) {
	var product models.ShopProduct
	err := orm.DB().Model(&models.ShopProduct{}).Where("id = ?", id).First(&product)
	return product, err
}

// All returns every product in the shop.
func (r *ProductRepository) All() ([]models.ShopProduct, error) {
	var products []models.ShopProduct
	err := orm.DB().Model(&models.ShopProduct{}).Get(&products)
	return products, err
}
