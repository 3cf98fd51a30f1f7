package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlatformContext(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		apiType  string
		wantErr  bool
	}{
		{name: "shopify graphql", platform: "shopify", apiType: "graphql"},
		{name: "shopify rest", platform: "shopify", apiType: "rest"},
		{name: "big commerce graphql", platform: "big_commerce", apiType: "graphql"},
		{name: "big commerce management", platform: "big_commerce", apiType: "management"},
		{name: "big commerce rejects rest", platform: "big_commerce", apiType: "rest", wantErr: true},
		{name: "unknown platform", platform: "magento", apiType: "graphql", wantErr: true},
		{name: "unknown api type", platform: "shopify", apiType: "soap", wantErr: true},
		{name: "empty pair", platform: "", apiType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewPlatformContext(tt.platform, tt.apiType)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, PlatformContext{}, ctx)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Platform(tt.platform), ctx.Platform)
			assert.Equal(t, APIType(tt.apiType), ctx.APIType)
		})
	}
}
