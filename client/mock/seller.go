package mock

import (
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/viant/storefront/schema"
)

var slugExpr = regexp.MustCompile(`[^a-z0-9]+`)

func (s *Service) sellerStatus(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	status := schema.SellerStatus{}
	if acc.seller != nil {
		status = *acc.seller
	}
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, status)
}

func (s *Service) registerSeller(w http.ResponseWriter, r *http.Request, acc *account) {
	registration := schema.SellerRegistration{}
	if !readJSON(w, r, &registration) {
		return
	}
	fields := map[string][]string{}
	for name, value := range map[string]string{
		"shop_name":           registration.ShopName,
		"pan_no":              registration.PanNo,
		"bank_account_number": registration.BankAccountNumber,
	} {
		if value == "" {
			fields[name] = []string{"This field is required."}
		}
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, fields)
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if acc.seller != nil {
		writeDetail(w, http.StatusBadRequest, "Seller profile already exists")
		return
	}
	status := schema.SellerStatusPending
	if s.AutoApproveSellers {
		status = schema.SellerStatusApproved
	}
	acc.seller = &schema.SellerStatus{Exists: true, Status: status, SellerRegistration: registration}
	writeJSON(w, http.StatusCreated, acc.seller)
}

func (s *Service) listSellerProducts(w http.ResponseWriter, r *http.Request, acc *account) {
	owner := acc.profile.PhoneNumber
	writeJSON(w, http.StatusOK, s.catalog(func(p *product) bool { return p.owner == owner }, schema.DefaultOrdering))
}

func (s *Service) createSellerProduct(w http.ResponseWriter, r *http.Request, acc *account) {
	input := &schema.ProductInput{}
	if !readJSON(w, r, input) {
		return
	}
	fields := map[string][]string{}
	if input.Title == "" {
		fields["title"] = []string{"This field is required."}
	}
	if input.Price.Float() <= 0 {
		fields["price"] = []string{"A valid number is required."}
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, fields)
		return
	}
	s.mux.Lock()
	item := &product{owner: acc.profile.PhoneNumber}
	item.ID = s.nextID()
	item.IsActive = true
	item.CreatedAt = time.Now().UTC()
	item.Slug = slugExpr.ReplaceAllString(strings.ToLower(input.Title), "-") + "-" + strconv.Itoa(item.ID)
	item.apply(input)
	s.products.Put(item.ID, item)
	ret := item.Product
	s.mux.Unlock()
	writeJSON(w, http.StatusCreated, ret)
}

func (s *Service) updateSellerProduct(w http.ResponseWriter, r *http.Request, acc *account) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	input := &schema.ProductInput{}
	if !readJSON(w, r, input) {
		return
	}
	item, ok := s.ownedProduct(id, acc)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	s.mux.Lock()
	item.apply(input)
	ret := item.Product
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) deleteSellerProduct(w http.ResponseWriter, r *http.Request, acc *account) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, ok = s.ownedProduct(id, acc); !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	s.products.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) uploadImages(w http.ResponseWriter, r *http.Request, acc *account) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed multipart form")
		return
	}
	id, err := strconv.Atoi(r.FormValue("product"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"product": {"A valid integer is required."}})
		return
	}
	item, ok := s.ownedProduct(id, acc)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"images": {"No files were submitted."}})
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	var uploaded []schema.ProductImage
	for _, header := range files {
		image := schema.ProductImage{
			ID:    s.nextID(),
			Image: fmt.Sprintf("/media/products/%d/%s", item.ID, path.Base(header.Filename)),
		}
		uploaded = append(uploaded, image)
		item.Images = append(item.Images, image)
	}
	if item.Thumbnail == "" {
		item.Thumbnail = uploaded[0].Image
	}
	writeJSON(w, http.StatusCreated, uploaded)
}

func (s *Service) listSellerOrders(w http.ResponseWriter, r *http.Request, acc *account) {
	owner := acc.profile.PhoneNumber
	s.mux.Lock()
	defer s.mux.Unlock()
	owned := map[int]bool{}
	for _, item := range s.products.Values() {
		if item.owner == owner {
			owned[item.ID] = true
		}
	}
	ret := []schema.OrderItem{}
	for _, orders := range s.orders {
		for _, order := range orders {
			for _, line := range order.Items {
				if owned[line.Product] {
					line.Order = order.ID
					line.OrderStatus = order.Status
					ret = append(ret, line)
				}
			}
		}
	}
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) ownedProduct(id int, acc *account) (*product, bool) {
	item, ok := s.products.Get(id)
	if !ok || item.owner != acc.profile.PhoneNumber {
		return nil, false
	}
	return item, true
}

// apply must be called with mux held.
func (p *product) apply(input *schema.ProductInput) {
	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Brand != "" {
		p.Brand = input.Brand
	}
	if input.Category != "" {
		p.Category = input.Category
	}
	if input.Price != "" {
		p.Price = input.Price
	}
	if input.MRP != "" {
		p.MRP = input.MRP
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
}
