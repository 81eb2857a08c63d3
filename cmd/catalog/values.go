package catalog

import (
	"github.com/spf13/cobra"
)

// NewAttributeValuesCmd creates and returns the get_attribute_values command
func NewAttributeValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_attribute_values service_code attribute_name",
		Short: "List the permitted values of one service attribute",
		Long: `List every value the named attribute can take for the named service,
in the order the catalog reports them.`,
		Example: `  # List EC2 instance types
  pricecat get_attribute_values AmazonEC2 instanceType`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttributeValues(args)
		},
	}

	return cmd
}

func runAttributeValues(args []string) error {
	emitter := newEmitter()
	if len(args) < 2 {
		return emitter.Fail("Missing service_code or attribute_name")
	}

	client, err := newCatalogClient()
	if err != nil {
		return emitter.Fail(err.Error())
	}

	values, err := client.ListAttributeValues(args[0], args[1])
	if err != nil {
		return emitter.Fail(err.Error())
	}
	return emitter.Result(values)
}
