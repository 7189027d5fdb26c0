package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"
)

const apiBase = "http://localhost:5000"

type registerResponse struct {
	Message    string      `json:"message"`
	InsertedID interface{} `json:"insertedId"`
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type settleResponse struct {
	PaymentResult struct {
		InsertedID interface{} `json:"insertedId"`
	} `json:"paymentResult"`
	DeleteResult struct {
		DeletedCount int64 `json:"deletedCount"`
	} `json:"deleteResult"`
}

func postJSON(t *testing.T, path string, payload interface{}, out interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	resp, err := http.Post(apiBase+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST %s status: %d, response: %s", path, resp.StatusCode, respBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode %s response: %v", path, err)
	}
}

// TestCheckoutAPI exercises the DB-coupled flows against a running server:
// idempotent registration and the settle transaction's counting behavior.
func TestCheckoutAPI(t *testing.T) {
	resp, err := http.Get(apiBase)
	if err != nil {
		t.Skipf("API server is not running at %s: %v", apiBase, err)
	}
	resp.Body.Close()

	// Unique email per run so reruns don't trip over earlier documents
	email := fmt.Sprintf("checkout-%d@example.com", time.Now().UnixNano())

	t.Run("Register User", func(t *testing.T) {
		var reg registerResponse
		postJSON(t, "/users", map[string]string{"email": email, "name": "Checkout Tester"}, &reg)
		if reg.InsertedID == nil {
			t.Fatalf("first registration reported no insertedId: %+v", reg)
		}
	})

	t.Run("Duplicate Registration Is A No-Op", func(t *testing.T) {
		var reg registerResponse
		postJSON(t, "/users", map[string]string{"email": email, "name": "Checkout Tester"}, &reg)
		if reg.Message != "user already exists" {
			t.Errorf("message = %q, want %q", reg.Message, "user already exists")
		}
		if reg.InsertedID != nil {
			t.Errorf("duplicate registration wrote a document: insertedId = %v", reg.InsertedID)
		}
	})

	// Two cart items to settle
	cartIDs := make([]string, 0, 2)
	t.Run("Add Cart Items", func(t *testing.T) {
		for _, name := range []string{"Margherita", "Tiramisu"} {
			var ins insertResponse
			postJSON(t, "/carts", map[string]interface{}{
				"menuId": "000000000000000000000000",
				"email":  email,
				"name":   name,
				"price":  9.99,
			}, &ins)
			if ins.InsertedID == "" {
				t.Fatalf("cart insert for %s returned no insertedId", name)
			}
			cartIDs = append(cartIDs, ins.InsertedID)
		}
	})

	t.Run("Settle Records Payment And Prunes Cart", func(t *testing.T) {
		if len(cartIDs) != 2 {
			t.Skip("Skipping test due to missing cart items")
		}

		var settled settleResponse
		postJSON(t, "/payments", map[string]interface{}{
			"email":  email,
			"price":  19.98,
			"cartId": cartIDs,
		}, &settled)

		if settled.PaymentResult.InsertedID == nil {
			t.Error("settle recorded no payment document")
		}
		if settled.DeleteResult.DeletedCount != 2 {
			t.Errorf("deletedCount = %d, want 2", settled.DeleteResult.DeletedCount)
		}

		// The settled ids must be gone from the cart collection
		resp, err := http.Get(apiBase + "/carts?email=" + email)
		if err != nil {
			t.Fatalf("GET /carts failed: %v", err)
		}
		defer resp.Body.Close()

		var remaining []map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&remaining); err != nil {
			t.Fatalf("failed to decode cart listing: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("cart still holds %d items after settle", len(remaining))
		}
	})

	t.Run("Overlapping Settle Deletes Nothing", func(t *testing.T) {
		if len(cartIDs) != 2 {
			t.Skip("Skipping test due to missing cart items")
		}

		var settled settleResponse
		postJSON(t, "/payments", map[string]interface{}{
			"email":  email,
			"price":  19.98,
			"cartId": cartIDs,
		}, &settled)

		if settled.PaymentResult.InsertedID == nil {
			t.Error("overlapping settle recorded no payment document")
		}
		if settled.DeleteResult.DeletedCount != 0 {
			t.Errorf("deletedCount = %d, want 0 for already-settled ids", settled.DeleteResult.DeletedCount)
		}
	})
}
