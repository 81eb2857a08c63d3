package catalog

import (
	"pricecat/internal/pricing"

	"github.com/spf13/cobra"
)

// NewProductsCmd creates and returns the get_products command
func NewProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_products service_code field value",
		Short: "Look up pricing records by exact-match filter",
		Long: `Look up the pricing records of the named service that match the given
field/value pair exactly. Records are printed as raw catalog documents;
their internal schema is not interpreted.`,
		Example: `  # Price records for m5.large in N. Virginia
  pricecat get_products AmazonEC2 instanceType m5.large
  pricecat get_products AmazonEC2 location "US East (N. Virginia)"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(args)
		},
	}

	return cmd
}

func runProducts(args []string) error {
	emitter := newEmitter()
	if len(args) < 3 {
		return emitter.Fail("Missing service_code, field, or value")
	}

	client, err := newCatalogClient()
	if err != nil {
		return emitter.Fail(err.Error())
	}

	filters := []pricing.Filter{{Field: args[1], Value: args[2]}}
	products, err := client.QueryProducts(args[0], filters)
	if err != nil {
		return emitter.Fail(err.Error())
	}
	return emitter.Result(products)
}
