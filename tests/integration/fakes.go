package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
)

const validBackendToken = "backend-bearer-token"

// fakeBackend is an in-memory stand-in for the FlowPay backend API. It
// speaks the {success, data, error} envelope on every route and enforces
// the bearer token.
type fakeBackend struct {
	mu           sync.Mutex
	vendors      []domain.Vendor
	transactions []domain.Transaction
	profileName  string

	// intentDelay stretches create-intent handling to widen the in-flight
	// window for concurrency tests.
	intentDelay time.Duration
	// intentError, when set, makes create-intent answer success:false with
	// this message.
	intentError  string
	intentsMade  int
	clientSecret string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		profileName:  "Ada Lovelace",
		clientSecret: "pi_fake123_secret_fake456",
	}
}

func (f *fakeBackend) ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func (f *fakeBackend) fail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}

func (f *fakeBackend) server() *httptest.Server {
	mux := http.NewServeMux()

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+validBackendToken {
				f.fail(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("/users/profile", auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodPatch {
			var body struct {
				Name string `json:"name"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.profileName = body.Name
			f.ok(w, map[string]interface{}{"user": map[string]string{"id": "u_1", "name": f.profileName, "email": "ada@example.com"}})
			return
		}
		f.ok(w, map[string]interface{}{"user": map[string]string{"id": "u_1", "name": f.profileName, "email": "ada@example.com"}})
	}))

	mux.HandleFunc("/users/dashboard-stats", auth(func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, map[string]interface{}{"stats": domain.DashboardStats{
			TotalPayments:         250000,
			MonthlyPayments:       40000,
			ActiveVendors:         2,
			CompletedTransactions: 7,
		}})
	}))

	mux.HandleFunc("/vendors", auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodPost {
			var body struct {
				Name         string `json:"name"`
				Email        string `json:"email"`
				Type         string `json:"type"`
				BusinessType string `json:"businessType"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			vendor := domain.Vendor{
				ID:        "v_" + strconv.Itoa(len(f.vendors)+1),
				Name:      body.Name,
				Email:     body.Email,
				Category:  domain.VendorCategory(body.Type),
				LegalForm: domain.LegalForm(body.BusinessType),
				CreatedAt: time.Now(),
			}
			f.vendors = append(f.vendors, vendor)
			f.ok(w, map[string]interface{}{
				"vendor":        vendor,
				"onboardingUrl": "https://connect.example/setup/" + vendor.ID,
			})
			return
		}
		f.ok(w, map[string]interface{}{"vendors": f.vendors})
	}))

	mux.HandleFunc("/vendors/", auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		rest := strings.TrimPrefix(r.URL.Path, "/vendors/")
		parts := strings.Split(rest, "/")
		if len(parts) != 2 {
			f.fail(w, http.StatusNotFound, "Not found")
			return
		}
		id, action := parts[0], parts[1]
		var vendor *domain.Vendor
		for i := range f.vendors {
			if f.vendors[i].ID == id {
				vendor = &f.vendors[i]
			}
		}
		if vendor == nil {
			f.fail(w, http.StatusNotFound, "Vendor not found")
			return
		}
		switch action {
		case "status":
			f.ok(w, map[string]interface{}{"vendor": vendor})
		case "dashboard":
			f.ok(w, map[string]interface{}{"url": "https://dash.example/" + vendor.ID + "/" + strconv.FormatInt(time.Now().UnixNano(), 36)})
		default:
			f.fail(w, http.StatusNotFound, "Not found")
		}
	}))

	mux.HandleFunc("/payments/create-intent", auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		delay := f.intentDelay
		intentError := f.intentError
		f.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		if intentError != "" {
			f.fail(w, http.StatusBadRequest, intentError)
			return
		}

		f.mu.Lock()
		f.intentsMade++
		secret := f.clientSecret
		f.mu.Unlock()
		f.ok(w, map[string]interface{}{"clientSecret": secret})
	}))

	mux.HandleFunc("/transactions", auth(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		status := r.URL.Query().Get("status")
		items := make([]domain.Transaction, 0, len(f.transactions))
		for _, tx := range f.transactions {
			if status != "" && string(tx.Status) != status {
				continue
			}
			items = append(items, tx)
		}
		f.ok(w, map[string]interface{}{
			"transactions": items,
			"pagination":   map[string]int{"pages": 1},
		})
	}))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return httptest.NewServer(mux)
}

// fakeGateway is an in-memory stand-in for the card gateway's confirm
// endpoint. Card number 4000000000000002 declines; everything else succeeds.
type fakeGateway struct {
	mu       sync.Mutex
	confirms int
}

func (g *fakeGateway) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/payment_intents/", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		g.confirms++
		g.mu.Unlock()

		var body struct {
			ClientSecret string `json:"client_secret"`
			Card         struct {
				Number string `json:"number"`
			} `json:"card"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		if body.Card.Number == "4000000000000002" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "requires_payment_method",
				"error":  map[string]string{"message": "Your card was declined"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "succeeded"})
	})
	return httptest.NewServer(mux)
}
