package view

type LoginForm struct {
	Email string
}

type LoginPage struct {
	Title    string
	ReturnTo string
	Form     LoginForm
	Errors   map[string]string
	// PageMsg is a page-level failure (bad credentials), distinct from
	// per-field validation errors.
	PageMsg string
	Flash   *Flash
}
