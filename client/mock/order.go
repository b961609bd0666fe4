package mock

import (
	"fmt"
	"net/http"
	"time"

	"github.com/viant/storefront/schema"
)

const orderStatusPending = "pending"

func (s *Service) getCart(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	cart := s.cartSnapshot(acc)
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, cart)
}

func (s *Service) addToCart(w http.ResponseWriter, r *http.Request, acc *account) {
	request := &schema.AddToCartRequest{}
	if !readJSON(w, r, request) {
		return
	}
	if request.Qty == 0 {
		request.Qty = 1
	}
	item, ok := s.products.Get(request.ProductID)
	if !ok || request.Qty < 0 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"product_id": {"Invalid product."}})
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if !item.IsActive {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"product_id": {"Invalid product."}})
		return
	}
	cart := s.cart(acc)
	index := -1
	for i := range cart.Items {
		if cart.Items[i].Product == item.ID {
			index = i
		}
	}
	qty := request.Qty
	if index >= 0 {
		qty += cart.Items[index].Qty
	}
	if qty > item.Stock {
		writeDetail(w, http.StatusBadRequest, "Not enough stock")
		return
	}
	if index < 0 {
		cart.Items = append(cart.Items, schema.CartItem{
			ID:            s.nextID(),
			Product:       item.ID,
			ProductTitle:  item.Title,
			Image:         item.Thumbnail,
			PriceSnapshot: item.Price,
		})
		index = len(cart.Items) - 1
	}
	cart.Items[index].Qty = qty
	writeJSON(w, http.StatusOK, s.cartSnapshot(acc))
}

func (s *Service) updateCartItem(w http.ResponseWriter, r *http.Request, acc *account) {
	request := &schema.UpdateCartItemRequest{}
	if !readJSON(w, r, request) {
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	cart := s.cart(acc)
	for i, line := range cart.Items {
		if line.ID != request.ItemID {
			continue
		}
		switch {
		case request.Qty <= 0:
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		default:
			if item, ok := s.products.Get(line.Product); ok && request.Qty > item.Stock {
				writeDetail(w, http.StatusBadRequest, "Not enough stock")
				return
			}
			cart.Items[i].Qty = request.Qty
		}
		writeJSON(w, http.StatusOK, s.cartSnapshot(acc))
		return
	}
	writeDetail(w, http.StatusNotFound, "Cart item not found")
}

func (s *Service) clearCart(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	s.cart(acc).Items = nil
	s.mux.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) listOrders(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	orders := s.orders[acc.profile.PhoneNumber]
	ret := make([]schema.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		ret = append(ret, *orders[i])
	}
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) createOrder(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	defer s.mux.Unlock()
	cart := s.cart(acc)
	if len(cart.Items) == 0 {
		writeDetail(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	for _, line := range cart.Items {
		item, ok := s.products.Get(line.Product)
		if !ok || line.Qty > item.Stock {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Not enough stock for %v", line.ProductTitle))
			return
		}
	}
	order := &schema.Order{ID: s.nextID(), Status: orderStatusPending, CreatedAt: time.Now().UTC()}
	sum := 0.0
	for _, line := range cart.Items {
		item, _ := s.products.Get(line.Product)
		item.Stock -= line.Qty
		subtotal := total(line.PriceSnapshot, line.Qty)
		sum += subtotal.Float()
		order.Items = append(order.Items, schema.OrderItem{
			ID:            s.nextID(),
			Product:       line.Product,
			TitleSnapshot: line.ProductTitle,
			PriceSnapshot: line.PriceSnapshot,
			Qty:           line.Qty,
			Subtotal:      subtotal,
		})
	}
	order.Total = schema.NewDecimal(sum)
	cart.Items = nil
	phone := acc.profile.PhoneNumber
	s.orders[phone] = append(s.orders[phone], order)
	s.notify(phone, "Order placed", fmt.Sprintf("Your order #%d has been placed.", order.ID))
	writeJSON(w, http.StatusCreated, order)
}

// cart must be called with mux held.
func (s *Service) cart(acc *account) *schema.Cart {
	phone := acc.profile.PhoneNumber
	cart, ok := s.carts[phone]
	if !ok {
		cart = &schema.Cart{ID: s.nextID()}
		s.carts[phone] = cart
	}
	return cart
}

// cartSnapshot must be called with mux held.
func (s *Service) cartSnapshot(acc *account) *schema.Cart {
	cart := s.cart(acc)
	ret := &schema.Cart{ID: cart.ID, Items: make([]schema.CartItem, 0, len(cart.Items))}
	sum := 0.0
	for _, line := range cart.Items {
		line.Subtotal = total(line.PriceSnapshot, line.Qty)
		sum += line.Subtotal.Float()
		ret.Items = append(ret.Items, line)
	}
	ret.Total = schema.NewDecimal(sum)
	return ret
}
