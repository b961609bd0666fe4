package mock

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/storefront/schema"
)

func (s *Service) listVouchers(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	vouchers := s.vouchers[acc.profile.PhoneNumber]
	ret := make([]schema.Voucher, 0, len(vouchers))
	for _, voucher := range vouchers {
		ret = append(ret, *voucher)
	}
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) purchaseVoucher(w http.ResponseWriter, r *http.Request, acc *account) {
	request := &schema.VoucherPurchaseRequest{}
	if !readJSON(w, r, request) {
		return
	}
	value := request.Value.Float()
	if value <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"value": {"Enter a valid amount."}})
		return
	}
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	s.mux.Lock()
	voucher := &schema.Voucher{
		ID:        s.nextID(),
		Code:      code,
		Value:     schema.NewDecimal(value),
		CreatedAt: time.Now().UTC(),
	}
	phone := acc.profile.PhoneNumber
	s.vouchers[phone] = append(s.vouchers[phone], voucher)
	s.notify(phone, "Voucher purchased", fmt.Sprintf("Voucher %v worth %v is ready to use.", code, voucher.Value))
	s.mux.Unlock()
	writeJSON(w, http.StatusCreated, voucher)
}

func (s *Service) listNotifications(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	notifications := s.notifications[acc.profile.PhoneNumber]
	ret := make([]schema.Notification, 0, len(notifications))
	for i := len(notifications) - 1; i >= 0; i-- {
		ret = append(ret, *notifications[i])
	}
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) markNotificationRead(w http.ResponseWriter, r *http.Request, acc *account) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, notification := range s.notifications[acc.profile.PhoneNumber] {
		if notification.ID == id {
			notification.IsRead = true
			writeJSON(w, http.StatusOK, notification)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

// notify must be called with mux held.
func (s *Service) notify(phone, title, message string) {
	s.notifications[phone] = append(s.notifications[phone], &schema.Notification{
		ID:        s.nextID(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}
