package logger

import "testing"

type registerPayload struct {
	Name       string `json:"name"`
	BranchCode string `json:"branchCode"`
	AccessPIN  string `json:"accessPIN"`
}

func TestSanitizePayloadMasksAccessPIN(t *testing.T) {
	payload := registerPayload{
		Name:       "Jane Doe",
		BranchCode: "200001",
		AccessPIN:  "1234",
	}

	sanitized, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected sanitized map, got %T", SanitizePayload(payload))
	}

	if sanitized["accessPIN"] != "******" {
		t.Fatalf("expected accessPIN to be masked, got %v", sanitized["accessPIN"])
	}
	if sanitized["name"] != "Jane Doe" {
		t.Fatalf("expected name to pass through, got %v", sanitized["name"])
	}
}

func TestSanitizePayloadMasksNestedSensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"channelKey": "BranchLedgerKey001",
		"teller": map[string]any{
			"access_pin": "5678",
			"pinHash":    "$2a$10$abcdef",
		},
	}

	sanitized, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected sanitized map, got %T", SanitizePayload(payload))
	}

	if sanitized["channelKey"] != "******" {
		t.Fatalf("expected channelKey to be masked, got %v", sanitized["channelKey"])
	}
	teller, ok := sanitized["teller"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested teller map, got %T", sanitized["teller"])
	}
	if teller["access_pin"] != "******" {
		t.Fatalf("expected access_pin to be masked, got %v", teller["access_pin"])
	}
	if teller["pinHash"] != "******" {
		t.Fatalf("expected pinHash to be masked, got %v", teller["pinHash"])
	}
}
