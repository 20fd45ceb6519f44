package randomdata

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// password character classes
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*-_=+?"

	localSuffixChars = lowerChars + digitChars
	localSuffixLen   = 6
)

// DefaultDomain is the email domain used when a Generator has none.
const DefaultDomain = "shopcheck.test"

// Generator produces random form values.
type Generator struct {
	Domain string
	Policy PasswordPolicy
}

// New creates a generator with the default domain and password policy.
func New() *Generator {
	return &Generator{Domain: DefaultDomain, Policy: DefaultPasswordPolicy}
}

var defaultGenerator = New()

// FirstName returns a random first name.
func FirstName() string { return defaultGenerator.FirstName() }

// LastName returns a random last name.
func LastName() string { return defaultGenerator.LastName() }

// Email returns a random email address on DefaultDomain.
func Email() string { return defaultGenerator.Email() }

// PhoneNumber returns a random 10-digit phone number.
func PhoneNumber() string { return defaultGenerator.PhoneNumber() }

// Password returns a password satisfying DefaultPasswordPolicy.
func Password() string { return defaultGenerator.Password() }

// RandomAddress returns a street address line.
func RandomAddress() string { return defaultGenerator.Address() }

// RandomCity returns a city name.
func RandomCity() string { return defaultGenerator.City() }

// RandomPin returns a 6-digit postal code.
func RandomPin() string { return defaultGenerator.Pin() }

// RandomCountry returns a country the shop ships to.
func RandomCountry() string { return defaultGenerator.Country() }

// RandomState returns a region name.
func RandomState() string { return defaultGenerator.State() }

// FirstName returns a random first name.
func (g *Generator) FirstName() string {
	return pick(firstNames)
}

// LastName returns a random last name.
func (g *Generator) LastName() string {
	return pick(lastNames)
}

// Email returns <first>.<last><6 random [a-z0-9]>@<domain>. The suffix gives
// 36^6 combinations per name pair, so repeats within a run are unlikely but possible.
func (g *Generator) Email() string {
	return g.emailFor(g.FirstName(), g.LastName())
}

func (g *Generator) emailFor(first, last string) string {
	domain := g.Domain
	if domain == "" {
		domain = DefaultDomain
	}
	suffix := make([]byte, localSuffixLen)
	for i := range suffix {
		suffix[i] = pickByte(localSuffixChars)
	}
	return strings.ToLower(first) + "." + strings.ToLower(last) + string(suffix) + "@" + domain
}

// PhoneNumber returns 10 digits with a non-zero leading digit.
func (g *Generator) PhoneNumber() string {
	return fmt.Sprintf("%d%09d", 1+randIntn(9), randIntn(1_000_000_000))
}

// Password generates a password of the policy's length with at least one character
// from every required class.
func (g *Generator) Password() string {
	policy := g.Policy
	if policy.MinLength == 0 && policy.MaxLength == 0 {
		policy = DefaultPasswordPolicy
	}
	length := policy.length()

	classes := []string{lowerChars}
	if policy.RequireUpper {
		classes = append(classes, upperChars)
	}
	if policy.RequireDigit {
		classes = append(classes, digitChars)
	}
	if policy.RequireSymbol {
		classes = append(classes, symbolChars)
	}
	all := strings.Join(classes, "")

	buf := make([]byte, length)
	for i := range buf {
		if i < len(classes) {
			buf[i] = pickByte(classes[i])
		} else {
			buf[i] = pickByte(all)
		}
	}

	// shuffle using Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j := randIntn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Address returns a street line like "1234 Oak Avenue".
func (g *Generator) Address() string {
	return fmt.Sprintf("%d %s %s", 100+randIntn(9900), pick(streetNames), pick(streetSuffixes))
}

// City returns a random city.
func (g *Generator) City() string {
	return pick(cities)
}

// Pin returns a 6-digit postal code with a non-zero leading digit.
func (g *Generator) Pin() string {
	return fmt.Sprintf("%d%05d", 1+randIntn(9), randIntn(100000))
}

// Country returns one of the countries the shop's checkout form lists.
func (g *Generator) Country() string {
	return pick(Countries)
}

// State returns one of the regions the shop's checkout form lists.
func (g *Generator) State() string {
	return pick(States)
}

// Identity returns a complete registrant with a matching email.
func (g *Generator) Identity() GeneratedIdentity {
	first, last := g.FirstName(), g.LastName()
	return GeneratedIdentity{
		FirstName: first,
		LastName:  last,
		Email:     g.emailFor(first, last),
		Phone:     g.PhoneNumber(),
		Password:  g.Password(),
	}
}

// BillingAddress returns an address with every checkout field filled.
func (g *Generator) BillingAddress() Address {
	return Address{
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Address1:  g.Address(),
		Address2:  g.Address(),
		City:      g.City(),
		Pin:       g.Pin(),
		Country:   g.Country(),
		State:     g.State(),
	}
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// pickByte returns a random byte from a string.
func pickByte(s string) byte {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
