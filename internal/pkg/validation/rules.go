package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RequiredMessage is the message emitted when a required field is absent,
// null, or empty/whitespace-only.
func RequiredMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}

// InvalidEmailMessage is the message emitted when a field is present but not
// a syntactically valid email address.
func InvalidEmailMessage(field string) string {
	return fmt.Sprintf("Please provide a valid email address for %q", field)
}

// DuplicateEmailMessage is the message emitted when a signup email collides
// with an already registered one.
func DuplicateEmailMessage(field string) string {
	return fmt.Sprintf("Please provide a unique value for %q", field)
}

// Collector accumulates field validation messages; every triggered check is
// recorded, not just the first.
type Collector struct {
	messages []string
}

// NewCollector creates an empty message collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Require records a failure when value is empty or whitespace-only.
func (c *Collector) Require(field, value string) *Collector {
	if strings.TrimSpace(value) == "" {
		c.messages = append(c.messages, RequiredMessage(field))
	}
	return c
}

// RequireEmail records a presence failure, or a syntax failure when the
// value is present but not a valid email address.
func (c *Collector) RequireEmail(field, value string) *Collector {
	if strings.TrimSpace(value) == "" {
		c.messages = append(c.messages, RequiredMessage(field))
		return c
	}
	if err := validate.Var(value, "email"); err != nil {
		c.messages = append(c.messages, InvalidEmailMessage(field))
	}
	return c
}

// Add records an arbitrary message.
func (c *Collector) Add(message string) *Collector {
	c.messages = append(c.messages, message)
	return c
}

// HasErrors reports whether any check failed.
func (c *Collector) HasErrors() bool {
	return len(c.messages) > 0
}

// Messages returns the collected messages in check order.
func (c *Collector) Messages() []string {
	return c.messages
}
