package httpapi

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSerializer is echo's JSON codec on top of jsoniter, the same codec the event payloads use.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return nil
}

// bindJSON decodes the request body into target. Any decoding problem is ErrInvalidRequestBody.
func bindJSON(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return nil
}
