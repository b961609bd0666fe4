package mock

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/viant/storefront/schema"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

var (
	errTokenType = errors.New("unexpected token type")
	errRevoked   = errors.New("token revoked")
)

type handlerFunc func(w http.ResponseWriter, r *http.Request, acc *account)

// createJWT creates a signed credential of tokenType for subject
func (s *Service) createJWT(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"typ": tokenType,
		"gen": s.generation(tokenType),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// verifyJWT returns the subject of a valid credential of tokenType
func (s *Service) verifyJWT(raw, tokenType string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if claims["typ"] != tokenType {
		return "", errTokenType
	}
	if generation, _ := claims["gen"].(float64); int64(generation) != s.generation(tokenType) {
		return "", errRevoked
	}
	return claims.GetSubject()
}

func (s *Service) generation(tokenType string) int64 {
	if tokenType == refreshTokenType {
		return s.refreshGeneration.Load()
	}
	return s.accessGeneration.Load()
}

func (s *Service) issueCredentials(phoneNumber string) (*schema.Credentials, error) {
	access, err := s.createJWT(phoneNumber, accessTokenType, s.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.createJWT(phoneNumber, refreshTokenType, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &schema.Credentials{Access: access, Refresh: refresh}, nil
}

// authorized rejects requests without a valid access credential
func (s *Service) authorized(handler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		subject, err := s.verifyJWT(strings.TrimPrefix(header, "Bearer "), accessTokenType)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Given token not valid for any token type",
				"code":   "token_not_valid",
			})
			return
		}
		acc, ok := s.accounts.Get(subject)
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "User not found")
			return
		}
		handler(w, r, acc)
	}
}

// seller additionally requires an approved seller registration
func (s *Service) seller(handler handlerFunc) http.HandlerFunc {
	return s.authorized(func(w http.ResponseWriter, r *http.Request, acc *account) {
		s.mux.Lock()
		approved := acc.seller.Approved()
		s.mux.Unlock()
		if !approved {
			writeDetail(w, http.StatusForbidden, "Seller account is not approved")
			return
		}
		handler(w, r, acc)
	})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	if s.LoginHandler != nil {
		s.LoginHandler(w, r)
		return
	}
	request := &schema.LoginRequest{}
	if !readJSON(w, r, request) {
		return
	}
	acc, ok := s.accounts.Get(request.PhoneNumber)
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(request.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	credentials, err := s.issueCredentials(request.PhoneNumber)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, credentials)
}

func (s *Service) signup(w http.ResponseWriter, r *http.Request) {
	request := &schema.SignupRequest{}
	if !readJSON(w, r, request) {
		return
	}
	fields := map[string][]string{}
	if request.PhoneNumber == "" {
		fields["phone_number"] = []string{"This field is required."}
	}
	if request.Password == "" {
		fields["password"] = []string{"This field is required."}
	} else if request.Password != request.Password2 {
		fields["password"] = []string{"Passwords do not match."}
	}
	if _, ok := s.accounts.Get(request.PhoneNumber); ok {
		fields["phone_number"] = []string{"user with this phone number already exists."}
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, fields)
		return
	}
	profile := schema.Profile{
		Name:         request.Name,
		Email:        request.Email,
		PhoneNumber:  request.PhoneNumber,
		Gender:       request.Gender,
		DateOfBirth:  request.DateOfBirth,
		ReferralCode: request.ReferralCode,
	}
	if err := s.AddAccount(profile, request.Password); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"phone_number": {err.Error()}})
		return
	}
	credentials, err := s.issueCredentials(request.PhoneNumber)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, credentials)
}

func (s *Service) refresh(w http.ResponseWriter, r *http.Request) {
	if s.RefreshHandler != nil {
		s.RefreshHandler(w, r)
		return
	}
	request := map[string]string{}
	if !readJSON(w, r, &request) {
		return
	}
	subject, err := s.verifyJWT(request["refresh"], refreshTokenType)
	if err == nil {
		if _, ok := s.accounts.Get(subject); !ok {
			err = errRevoked
		}
	}
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "Token is invalid or expired",
			"code":   "token_not_valid",
		})
		return
	}
	access, err := s.createJWT(subject, accessTokenType, s.AccessTTL)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

func (s *Service) profile(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mux.Lock()
	profile := acc.profile
	if acc.seller != nil {
		profile.IsSeller = acc.seller.Approved()
		profile.SellerStatus = acc.seller.Status
	}
	s.mux.Unlock()
	writeJSON(w, http.StatusOK, profile)
}
