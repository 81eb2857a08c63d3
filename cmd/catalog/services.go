package catalog

import (
	"github.com/spf13/cobra"
)

// NewServicesCmd creates and returns the get_services command
func NewServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_services",
		Short: "List all service families in the pricing catalog",
		Long: `List all service families known to the pricing catalog, with the
attribute names along which each family's prices vary.`,
		Example: `  # List every priceable service
  pricecat get_services`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServices()
		},
	}

	return cmd
}

func runServices() error {
	emitter := newEmitter()

	client, err := newCatalogClient()
	if err != nil {
		return emitter.Fail(err.Error())
	}

	services, err := client.ListServices()
	if err != nil {
		return emitter.Fail(err.Error())
	}
	return emitter.Result(services)
}
