package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"apiType":   "graphql",
			"dateStyle": "datetime",
		},
		"cart": map[string]any{
			"maxQuantity": 0,
		},
		"http": map[string]any{
			"maxRequestBodySize": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_APITYPE", want: "store.apiType"},
		{envKey: "STORE_DATESTYLE", want: "store.dateStyle"},
		{envKey: "CART_MAXQUANTITY", want: "cart.maxQuantity"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
