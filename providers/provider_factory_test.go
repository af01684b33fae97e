package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/ROEAnalyzer/config"
	"gitlab.com/aoterocom/ROEAnalyzer/providers/backend"
	"gitlab.com/aoterocom/ROEAnalyzer/providers/demo"
)

func TestProviderFactory(t *testing.T) {
	provider, err := ProviderFactory(&config.Config{Provider: config.ProviderBackend, APIBaseURL: "http://localhost:8000/"})
	require.NoError(t, err)
	backendService, ok := provider.(*backend.BackendService)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", backendService.BaseURL())

	provider, err = ProviderFactory(&config.Config{Provider: config.ProviderDemo})
	require.NoError(t, err)
	assert.IsType(t, &demo.DemoService{}, provider)

	_, err = ProviderFactory(&config.Config{Provider: "yahoo"})
	assert.EqualError(t, err, "yahoo is not a known analysis provider")
}
