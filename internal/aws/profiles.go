package aws

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws/defaults"
	"gopkg.in/ini.v1"
)

// ListProfiles returns the names of the AWS profiles defined in the
// shared credentials and config files, deduplicated and sorted. The
// "profile " prefix used in the config file is stripped.
func ListProfiles() ([]string, error) {
	credsPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credsPath == "" {
		credsPath = defaults.SharedCredentialsFilename()
	}

	configPath := os.Getenv("AWS_CONFIG_FILE")
	if configPath == "" {
		configPath = defaults.SharedConfigFilename()
	}

	profiles := make(map[string]struct{})
	for _, path := range []string{credsPath, configPath} {
		names, err := profileSections(path)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			profiles[strings.TrimPrefix(name, "profile ")] = struct{}{}
		}
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result, nil
}

// profileSections returns the section names of one ini file. A file
// that does not exist contributes no profiles.
func profileSections(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var names []string
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, section.Name())
	}
	return names, nil
}
