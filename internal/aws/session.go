package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/pricing"

	"pricecat/internal/logging"
)

// NewSession creates an AWS session in the given region. An empty
// profile uses the SDK default credential chain, which reads
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY from the environment.
// Credential presence is not validated here; a missing or bad
// credential surfaces as an error from the first API call.
func NewSession(profile, region string) (*session.Session, error) {
	opts := session.Options{
		Config: aws.Config{Region: aws.String(region)},
	}
	if profile != "" {
		opts.Profile = profile
		opts.SharedConfigState = session.SharedConfigEnable
	}

	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	logging.Debug("Created AWS session", map[string]interface{}{
		"profile": profile,
		"region":  region,
	})
	return sess, nil
}

// NewPricingClient creates the Pricing API transport. The Pricing API
// is only served from us-east-1 and ap-south-1; region should be one
// of those.
func NewPricingClient(profile, region string) (*pricing.Pricing, error) {
	sess, err := NewSession(profile, region)
	if err != nil {
		return nil, err
	}
	return pricing.New(sess), nil
}
