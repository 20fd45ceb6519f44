// Package randomdata generates synthetic identity and address values for form-filling steps.
// All generation uses crypto/rand; nothing is remembered between calls.
package randomdata

// GeneratedIdentity is one throwaway registrant.
type GeneratedIdentity struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Password  string `json:"password" yaml:"password"`
}

// Address is a billing or delivery address for checkout forms.
type Address struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Address1  string `json:"address_1" yaml:"address_1"`
	Address2  string `json:"address_2" yaml:"address_2"`
	City      string `json:"city" yaml:"city"`
	Pin       string `json:"pin" yaml:"pin"`
	Country   string `json:"country" yaml:"country"`
	State     string `json:"state" yaml:"state"`
}
