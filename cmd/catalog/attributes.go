package catalog

import (
	"github.com/spf13/cobra"
)

// NewServiceAttributesCmd creates and returns the get_service_attributes command
func NewServiceAttributesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_service_attributes service_code",
		Short: "List the attribute names of one service",
		Long: `List the attribute names of the named service. An unknown service
code yields an empty list, not an error.`,
		Example: `  # List the pricing dimensions of EC2
  pricecat get_service_attributes AmazonEC2`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServiceAttributes(args)
		},
	}

	return cmd
}

func runServiceAttributes(args []string) error {
	emitter := newEmitter()
	if len(args) < 1 {
		return emitter.Fail("Missing service_code")
	}

	client, err := newCatalogClient()
	if err != nil {
		return emitter.Fail(err.Error())
	}

	attributes, err := client.ListServiceAttributes(args[0])
	if err != nil {
		return emitter.Fail(err.Error())
	}
	return emitter.Result(attributes)
}
