package factories

import (
	"math"
	"math/rand"

	"github.com/chrisdamba/dishstats/internal/models"
	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
)

type dish struct {
	name  string
	price float64
}

var menu = []dish{
	{"Margherita Pizza", 11.50},
	{"Pepperoni Pizza", 13.00},
	{"Classic Cheeseburger", 9.75},
	{"Veggie Burger", 8.90},
	{"Chicken Tikka Masala", 12.40},
	{"Vegetable Curry", 10.20},
	{"Caesar Salad", 7.80},
	{"Greek Salad", 8.10},
	{"Pad Thai", 11.90},
	{"Sushi Roll", 14.50},
	{"Ramen", 12.00},
	{"Tacos", 9.30},
	{"Burrito", 10.60},
	{"Spaghetti Carbonara", 12.80},
	{"Chocolate Shake", 5.50},
	{"Tiramisu", 6.40},
}

// OrderFactory generates demo orders. Generated orders carry no order
// date; the engine's backfill stage stamps them, so the whole demo
// pipeline stays reproducible from one seed.
type OrderFactory struct {
	fake     faker.Faker
	rng      *rand.Rand
	couriers []string
}

func NewOrderFactory(seed int64) *OrderFactory {
	f := &OrderFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
	// Small courier pool so the delivery-performance ranking has
	// repeat names to count.
	for i := 0; i < 6; i++ {
		f.couriers = append(f.couriers, f.fake.Person().Name())
	}
	return f
}

func (of *OrderFactory) CreateOrder(id int) models.Order {
	itemCount := 1 + of.rng.Intn(3)
	items := make([]models.OrderItem, itemCount)
	for i := range items {
		d := menu[of.rng.Intn(len(menu))]
		quantity := 1 + of.rng.Intn(3)
		items[i] = models.OrderItem{
			Name:       d.name,
			UnitPrice:  d.price,
			Quantity:   quantity,
			TotalPrice: roundCents(d.price * float64(quantity)),
		}
	}

	order := models.Order{
		ID:              id,
		CustomerName:    of.fake.Person().Name(),
		CustomerPhone:   of.fake.Phone().Number(),
		CustomerAddress: of.fake.Address().Address(),
		Items:           items,
	}

	if of.rng.Float64() < 0.65 {
		order.OrderType = models.OrderTypeOnline
		order.DeliveryPerson = of.couriers[of.rng.Intn(len(of.couriers))]
	} else {
		order.OrderType = models.OrderTypeDineIn
	}

	switch r := of.rng.Float64(); {
	case r < 0.55:
		order.OrderStatus = models.OrderStatusDelivered
	case r < 0.80:
		order.OrderStatus = models.OrderStatusInTransit
	default:
		order.OrderStatus = models.OrderStatusPending
	}

	return order
}

func (of *OrderFactory) CreateOrders(count int) []models.Order {
	bar := progressbar.Default(int64(count), "generating demo orders")
	orders := make([]models.Order, count)
	for i := range orders {
		orders[i] = of.CreateOrder(1001 + i)
		_ = bar.Add(1)
	}
	return orders
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
