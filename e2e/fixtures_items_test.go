//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
)

const itemsJSON = `[
  {"name": "Sword", "img": "https://example.com/sword.png", "bonus": "+15 Attack Damage", "combos": ["Infinity Edge", "Bloodthirster"]},
  {"name": "Shield", "img": "https://example.com/shield.png", "bonus": "+20 Armor", "combos": ["Thornmail"]},
  {"name": "Bow", "img": "https://example.com/bow.png", "bonus": "+15% Attack Speed", "combos": ["Rapid Firecannon"]},
  {"name": "Infinity Edge", "img": "https://example.com/ie.png", "bonus": "+150% Critical Strike Damage", "built_with": {"item_1": "Sword", "item_2": "Sword"}}
]`

// CreateTestWorkspace creates an isolated HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "tftlookup-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// StartItemsServer serves the item catalogue until the test ends
func (tf *TUITestFramework) StartItemsServer() string {
	tf.t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(itemsJSON))
	}))
	tf.t.Cleanup(srv.Close)
	return srv.URL
}

// StartFailingServer answers every request with a server error
func (tf *TUITestFramework) StartFailingServer() string {
	tf.t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusInternalServerError)
	}))
	tf.t.Cleanup(srv.Close)
	return srv.URL
}
