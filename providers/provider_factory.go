package providers

import (
	"fmt"

	"gitlab.com/aoterocom/ROEAnalyzer/config"
	"gitlab.com/aoterocom/ROEAnalyzer/interfaces"
	"gitlab.com/aoterocom/ROEAnalyzer/providers/backend"
	"gitlab.com/aoterocom/ROEAnalyzer/providers/demo"
)

func ProviderFactory(cfg *config.Config) (interfaces.AnalysisProvider, error) {
	switch cfg.Provider {
	case config.ProviderBackend:
		backendService := backend.NewBackendService(cfg.APIBaseURL, cfg.RequestTimeout)
		return interfaces.AnalysisProvider(backendService), nil
	case config.ProviderDemo:
		demoService := demo.NewDemoService(cfg.DemoLatency)
		return interfaces.AnalysisProvider(demoService), nil
	default:
		return nil, fmt.Errorf("%s is not a known analysis provider", cfg.Provider)
	}
}
