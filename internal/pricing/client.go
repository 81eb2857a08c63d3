package pricing

import (
	"encoding/json"

	"pricecat/internal/logging"

	"github.com/aws/aws-sdk-go/aws"
	awspricing "github.com/aws/aws-sdk-go/service/pricing"
)

// CatalogAPI is the subset of the AWS Pricing API this package uses.
// *pricing.Pricing from the AWS SDK satisfies it; tests substitute a
// stub.
type CatalogAPI interface {
	DescribeServices(*awspricing.DescribeServicesInput) (*awspricing.DescribeServicesOutput, error)
	GetAttributeValues(*awspricing.GetAttributeValuesInput) (*awspricing.GetAttributeValuesOutput, error)
	GetProducts(*awspricing.GetProductsInput) (*awspricing.GetProductsOutput, error)
}

// Client translates typed catalog queries into transport calls and
// normalizes results and errors. It holds no state beyond the injected
// transport, so concurrent use is safe and each call is an independent
// request/response round-trip. Only the first page of any response is
// consumed; no pagination tokens are followed.
type Client struct {
	api CatalogAPI
}

// New creates a catalog client over the given transport.
func New(api CatalogAPI) *Client {
	return &Client{api: api}
}

// ListServices returns the descriptors of all service families the
// catalog knows about, in the order the backend reports them.
func (c *Client) ListServices() ([]ServiceDescriptor, error) {
	out, err := c.api.DescribeServices(&awspricing.DescribeServicesInput{})
	if err != nil {
		logging.Debug("DescribeServices failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, transportError(err)
	}

	services := make([]ServiceDescriptor, 0, len(out.Services))
	for _, svc := range out.Services {
		if svc == nil {
			continue
		}
		services = append(services, ServiceDescriptor{
			Code:           aws.StringValue(svc.ServiceCode),
			AttributeNames: aws.StringValueSlice(svc.AttributeNames),
		})
	}
	return services, nil
}

// ListServiceAttributes returns the attribute names of the named
// service. A service code the backend does not know yields an empty
// result, not an error.
func (c *Client) ListServiceAttributes(serviceCode string) ([]string, error) {
	if serviceCode == "" {
		return nil, invalidArgument("service code must not be empty")
	}

	out, err := c.api.DescribeServices(&awspricing.DescribeServicesInput{
		ServiceCode: aws.String(serviceCode),
	})
	if err != nil {
		return nil, transportError(err)
	}

	if len(out.Services) == 0 || out.Services[0] == nil {
		return []string{}, nil
	}
	return aws.StringValueSlice(out.Services[0].AttributeNames), nil
}

// ListAttributeValues returns the permitted values of one attribute of
// one service. The result has exactly one entry per record the backend
// returned; a record without a value field contributes an empty string
// rather than being dropped.
func (c *Client) ListAttributeValues(serviceCode, attributeName string) ([]string, error) {
	if serviceCode == "" || attributeName == "" {
		return nil, invalidArgument("service code and attribute name must not be empty")
	}

	out, err := c.api.GetAttributeValues(&awspricing.GetAttributeValuesInput{
		ServiceCode:   aws.String(serviceCode),
		AttributeName: aws.String(attributeName),
	})
	if err != nil {
		return nil, transportError(err)
	}

	values := make([]string, 0, len(out.AttributeValues))
	for _, av := range out.AttributeValues {
		if av == nil {
			values = append(values, "")
			continue
		}
		values = append(values, aws.StringValue(av.Value))
	}
	return values, nil
}

// QueryProducts returns the pricing records matching all of the given
// filters (logical AND, exact match on every field). Filters may be
// empty. A single undecodable record fails the whole query: a price
// list with records silently missing must never be presented as
// complete.
func (c *Client) QueryProducts(serviceCode string, filters []Filter) ([]Product, error) {
	if serviceCode == "" {
		return nil, invalidArgument("service code must not be empty")
	}

	apiFilters := make([]*awspricing.Filter, 0, len(filters))
	for _, f := range filters {
		if f.Field == "" || f.Value == "" {
			return nil, invalidArgument("filter field and value must not be empty")
		}
		apiFilters = append(apiFilters, &awspricing.Filter{
			Type:  aws.String("TERM_MATCH"),
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}

	out, err := c.api.GetProducts(&awspricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     apiFilters,
	})
	if err != nil {
		logging.Debug("GetProducts failed", map[string]interface{}{
			"service_code": serviceCode,
			"filters":      len(filters),
			"error":        err.Error(),
		})
		return nil, transportError(err)
	}

	products := make([]Product, 0, len(out.PriceList))
	for i, rec := range out.PriceList {
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, decodeError("price record %d is not valid JSON: %v", i, err)
		}
		var p Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, decodeError("price record %d is not valid JSON: %v", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}
