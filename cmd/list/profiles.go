// Package list implements the supplemental listing commands that read
// local AWS configuration rather than the pricing catalog.
package list

import (
	"os"

	awsutil "pricecat/internal/aws"
	"pricecat/internal/config"
	"pricecat/internal/output"

	"github.com/spf13/cobra"
)

// NewProfilesCmd creates and returns the profiles command
func NewProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available AWS profiles",
		Long: `List all available AWS credential profiles from the system.
These profiles are read from the AWS credentials and config files and
printed as a JSON array, matching the output contract of the catalog
commands.`,
		Example: `  # List all available AWS profiles
  pricecat profiles`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles()
		},
	}

	return cmd
}

func runProfiles() error {
	emitter := output.NewEmitter(os.Stdout, config.Config.Pretty, config.Config.StrictExit)

	profiles, err := awsutil.ListProfiles()
	if err != nil {
		return emitter.Fail(err.Error())
	}
	return emitter.Result(profiles)
}
