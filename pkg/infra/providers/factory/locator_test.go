package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocator_Get(t *testing.T) {
	locator := NewProviderLocator(nil)

	for _, name := range []string{"", ProviderHuggingface, ProviderOpenAI, ProviderGoogle, ProviderAnthropic, ProviderBedrock, ProviderAzure} {
		t.Run(name, func(t *testing.T) {
			client, err := locator.Get(name)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	_, err := locator.Get("llamacpp")
	assert.EqualError(t, err, "unsupported provider: llamacpp")
}
