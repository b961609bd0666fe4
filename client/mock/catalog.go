package mock

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/viant/storefront/schema"
)

func (s *Service) home(w http.ResponseWriter, r *http.Request) {
	featured := s.catalog(func(p *product) bool { return p.IsActive }, schema.DefaultOrdering)
	if len(featured) > 4 {
		featured = featured[:4]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"title":    "Welcome to the storefront",
		"featured": featured,
	})
}

func (s *Service) about(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"title":   "About us",
		"content": "A marketplace for independent sellers.",
	})
}

func (s *Service) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mux.Lock()
	categories := append([]schema.Category{}, s.categories...)
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, categories)
}

func (s *Service) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := strings.ToLower(query.Get("search"))
	category := query.Get("category__slug")
	products := s.catalog(func(p *product) bool {
		if !p.IsActive {
			return false
		}
		if category != "" && p.Category != category {
			return false
		}
		if search == "" {
			return true
		}
		text := strings.ToLower(p.Title + " " + p.Brand + " " + p.Description)
		return strings.Contains(text, search)
	}, query.Get("ordering"))
	if !s.PaginateProducts {
		writeJSON(w, http.StatusOK, products)
		return
	}
	writeJSON(w, http.StatusOK, &schema.Page[schema.Product]{Count: len(products), Results: products})
}

func (s *Service) getProduct(w http.ResponseWriter, r *http.Request) {
	item, ok := s.productBySlug(r.PathValue("slug"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Service) listReviews(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, ok := s.productBySlug(slug); !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	s.mux.Lock()
	reviews := append([]schema.Review{}, s.reviews[slug]...)
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Service) addReview(w http.ResponseWriter, r *http.Request, acc *account) {
	slug := r.PathValue("slug")
	if _, ok := s.productBySlug(slug); !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	request := &schema.ReviewRequest{}
	if !readJSON(w, r, request) {
		return
	}
	if request.Rating < 1 || request.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"rating": {"Ensure this value is between 1 and 5."}})
		return
	}
	s.mux.Lock()
	review := schema.Review{
		ID:        s.nextID(),
		User:      acc.profile.Name,
		Rating:    request.Rating,
		Comment:   request.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.reviews[slug] = append(s.reviews[slug], review)
	s.mux.Unlock()
	writeJSON(w, http.StatusCreated, review)
}

// catalog returns copies of products matching filter sorted by ordering
func (s *Service) catalog(filter func(p *product) bool, ordering string) []schema.Product {
	s.mux.Lock()
	var ret []schema.Product
	for _, item := range s.products.Values() {
		if filter(item) {
			ret = append(ret, item.Product)
		}
	}
	s.mux.Unlock()
	if ordering == "" {
		ordering = schema.DefaultOrdering
	}
	descending := strings.HasPrefix(ordering, "-")
	less := func(i, j int) bool { return ret[i].CreatedAt.Before(ret[j].CreatedAt) }
	switch strings.TrimPrefix(ordering, "-") {
	case "price":
		less = func(i, j int) bool { return ret[i].Price.Float() < ret[j].Price.Float() }
	case "title":
		less = func(i, j int) bool { return ret[i].Title < ret[j].Title }
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if descending {
			return less(j, i)
		}
		return less(i, j)
	})
	if ret == nil {
		ret = []schema.Product{}
	}
	return ret
}

func (s *Service) productBySlug(slug string) (schema.Product, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, item := range s.products.Values() {
		if item.Slug == slug && item.IsActive {
			return item.Product, true
		}
	}
	return schema.Product{}, false
}
