package repositories

import (
	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists a new order record.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// FindByGatewayOrderID looks up an order by the gateway order id stored in
// its Razorpay descriptor. Payment callbacks carry only this id.
func (r *OrderRepository) FindByGatewayOrderID(id string) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Where("rzp_order_id = ?", id).First(&order)
	return order, err
}

// ByUser returns all orders placed by the given user, newest first.
func (r *OrderRepository) ByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Where("user_id = ?", userID).Order("created_at desc").Get(&orders)
	return orders, err
}
