/**
 * @description
 * Fake-data provider for demos, tests and load generation. Produces
 * schema-valid randomized field values on top of gofakeit. Every call is
 * independently randomized; nothing here is reproducible by design of the
 * load scenarios, which need unique users per virtual session.
 */
package fake

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// categories is the closed list of purchase categories the gateway accepts.
var categories = []string{
	"gas",
	"taxi",
	"tolls",
	"water",
	"beauty",
	"mobile",
	"travel",
	"parking",
	"catalog",
	"internet",
	"satellite",
	"education",
	"government",
	"healthcare",
	"restaurants",
	"electricity",
	"supermarkets",
}

// Email returns a syntactically valid address salted with the current
// nanosecond timestamp. The gateway treats email as a uniqueness key, so two
// calls must never collide.
func Email() string {
	return fmt.Sprintf("%d.%s", time.Now().UnixNano(), gofakeit.Email())
}

// Category returns a random member of the fixed purchase-category list.
func Category() string {
	return categories[rand.IntN(len(categories))]
}

// Categories returns a copy of the closed purchase-category list.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Float returns a random value in [start, end] rounded to 2 decimal places.
func Float(start, end float64) float64 {
	v := start + rand.Float64()*(end-start)
	return math.Round(v*100) / 100
}

// Amount returns a random monetary amount in [1, 100].
func Amount() float64 {
	return Float(1, 100)
}

// Enum picks uniformly at random among the declared values of a closed
// enumeration type.
func Enum[T ~string](values []T) T {
	return values[rand.IntN(len(values))]
}

// FirstName returns a random first name.
func FirstName() string { return gofakeit.FirstName() }

// LastName returns a random last name.
func LastName() string { return gofakeit.LastName() }

// MiddleName returns a random middle name.
func MiddleName() string { return gofakeit.FirstName() }

// PhoneNumber returns a random phone number.
func PhoneNumber() string { return gofakeit.Phone() }
