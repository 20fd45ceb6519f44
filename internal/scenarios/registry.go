package scenarios

// MissingProductName is a search term the demo catalog never matches
const MissingProductName = "Nokia 3310 Ultra"

// All returns every scenario in its canonical order
func All() []Scenario {
	return []Scenario{
		{Name: "User registration test @master @sanity @regression", Run: registrationScenario},
		{Name: "User login test @master @sanity @regression", Run: loginScenario},
		{Name: "Product search test @sanity @regression", Run: productSearchScenario},
		{Name: "Search with no matches @regression", Run: noMatchScenario},
		{Name: "execute end-to-end test flow @master", Run: EndToEnd},
	}
}

func registrationScenario(env *Env) error {
	if _, err := env.Open(); err != nil {
		return err
	}
	return RegisterIdentity(env, env.Data.Identity())
}

func loginScenario(env *Env) error {
	return Login(env, env.Config.Email, env.Config.Password)
}

func productSearchScenario(env *Env) error {
	if _, err := env.Open(); err != nil {
		return err
	}
	_, err := searchFor(env, env.Config.ProductName, true)
	return err
}

func noMatchScenario(env *Env) error {
	if _, err := env.Open(); err != nil {
		return err
	}
	return SearchMissingProduct(env, MissingProductName)
}

// EndToEnd registers, logs out, logs back in, fills the cart, checks its total and
// then runs checkout as configured.
func EndToEnd(env *Env) error {
	if _, err := env.Open(); err != nil {
		return err
	}

	email, err := Register(env)
	if err != nil {
		return err
	}
	if err := Logout(env); err != nil {
		return err
	}
	if err := Login(env, email, FlowPassword); err != nil {
		return err
	}
	if err := AddProductToCart(env); err != nil {
		return err
	}
	if err := VerifyShoppingCart(env); err != nil {
		return err
	}
	return Checkout(env)
}
