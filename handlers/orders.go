package handlers

import (
	"os"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/router"
	json "github.com/json-iterator/go"
)

const OrdersPath = "/api/shipping/orders"

type Order struct {
	ID     int    `json:"order_id"`
	Date   string `json:"order_date"`
	Status string `json:"order_status"`
}

// LoadOrders reads the list of orders from a JSON file.
func LoadOrders(path string) ([]Order, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err = json.Unmarshal(content, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Orders is a web service responding with the orders list, re-read from the file on
// every request. In case the file can't be loaded, 500 Internal Server Error is
// returned with the status text as its body.
func Orders(path string) router.Handler {
	return func(request *http.Request) *http.Response {
		orders, err := LoadOrders(path)
		if err != nil {
			return http.Error(request, status.ErrInternalServerError).
				SetBody(string(status.Text(status.InternalServerError)))
		}

		return request.Respond().JSON(orders)
	}
}
