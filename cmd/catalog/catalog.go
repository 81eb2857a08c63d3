// Package catalog implements the pricing-catalog query commands. Each
// command prints exactly one JSON document to stdout and, by default,
// exits zero even on failure so callers can rely on parsing the body.
package catalog

import (
	"os"

	awsutil "pricecat/internal/aws"
	"pricecat/internal/config"
	"pricecat/internal/output"
	"pricecat/internal/pricing"
)

// newCatalogClient builds the catalog client for the configured
// profile and region. It is a variable so command tests can substitute
// a stub transport.
var newCatalogClient = func() (*pricing.Client, error) {
	api, err := awsutil.NewPricingClient(config.Config.Profile, config.Config.Region)
	if err != nil {
		return nil, err
	}
	return pricing.New(api), nil
}

func newEmitter() *output.Emitter {
	return output.NewEmitter(os.Stdout, config.Config.Pretty, config.Config.StrictExit)
}
