package store

import (
	"github.com/jhankarhotel/frontdesk-app/config"
	"github.com/jhankarhotel/frontdesk-app/models"
)

// CartLine is one menu item picked in the public ordering flow.
type CartLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// QuoteLine is a priced cart line.
type QuoteLine struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}

// Quote is the ordering flow's own total: food total plus a 5% room
// service charge. It is independent of the customer ledger — the GST
// billing there only ever sees the order's final amount.
type Quote struct {
	Lines         []QuoteLine `json:"lines"`
	FoodTotal     float64     `json:"foodTotal"`
	ServiceCharge float64     `json:"serviceCharge"`
	GrandTotal    float64     `json:"grandTotal"`
}

// QuoteOrder prices a cart against the current menu. Lines referencing
// unknown items are skipped rather than failing the quote.
func (s *HotelStore) QuoteOrder(cart []CartLine) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote := Quote{Lines: []QuoteLine{}}
	for _, line := range cart {
		if line.Quantity <= 0 {
			continue
		}

		var item models.FoodItem
		if err := s.db.First(&item, "id = ?", line.ItemID).Error; err != nil {
			continue
		}

		amount := float64(item.Price * line.Quantity)
		quote.Lines = append(quote.Lines, QuoteLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: float64(item.Price),
			Amount:    amount,
		})
		quote.FoodTotal += amount
	}

	quote.ServiceCharge = round2(quote.FoodTotal * config.ServiceChargeRate)
	quote.GrandTotal = round2(quote.FoodTotal + quote.ServiceCharge)
	return quote, nil
}
